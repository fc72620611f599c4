package fuzzcorp

import "github.com/rs/zerolog"

// Log emits a Report as a structured log event, tagging the corpus entry by
// its fingerprint so repeated runs over the same input are easy to compare.
func Log(log zerolog.Logger, fingerprint string, r Report) {
	event := log.Info()
	if !r.Clean() {
		event = log.Error()
	}
	event.
		Str("fingerprint", fingerprint).
		Int("keys_processed", r.KeysProcessed).
		Int("insert_failures", len(r.InsertFailures)).
		Int("remove_failures", len(r.RemoveFailures)).
		Int("final_len", r.FinalLen).
		Msg("fuzz corpus replay")
}
