// Package fuzzcorp replays a raw byte corpus against a Tree the way the
// original LLVMFuzzerTestOneInput driver did: decode the bytes into keys,
// insert each one (checking it then reads back), then remove each one.
// Where the original called std::terminate on a broken post-condition,
// this package records a failure in a Report instead, so a whole corpus can
// be swept without one bad input ending the run.
package fuzzcorp

import "bset/internal/btree"

// Report summarizes one corpus replay.
type Report struct {
	KeysProcessed  int
	InsertFailures []int32
	RemoveFailures []int32
	FinalLen       int
}

// Clean reports whether the replay found no broken post-conditions.
func (r Report) Clean() bool {
	return len(r.InsertFailures) == 0 && len(r.RemoveFailures) == 0
}

// Run decodes data into keys and replays them against tr: an insert pass
// followed by a remove pass, each checking the tree's state reflects the
// operation just performed.
func Run(tr *btree.Tree[int32], data []byte) Report {
	keys := decodeKeys(data)
	report := Report{KeysProcessed: len(keys)}

	for _, k := range keys {
		if !tr.Contains(k) {
			tr.Insert(k)
		}
		if !tr.Contains(k) {
			report.InsertFailures = append(report.InsertFailures, k)
		}
	}

	for _, k := range keys {
		tr.Remove(k)
		if tr.Contains(k) {
			report.RemoveFailures = append(report.RemoveFailures, k)
		}
	}

	report.FinalLen = tr.Len()
	return report
}
