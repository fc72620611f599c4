package fuzzcorp

import "golang.org/x/crypto/blake2b"

// Fingerprint returns a stable hex-encoded BLAKE2b-256 digest of a corpus
// file's contents, logged with each report so runs over the same input can
// be matched up.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	const hex = "0123456789abcdef"
	out := make([]byte, len(sum)*2)
	for i, b := range sum {
		out[i*2] = hex[b>>4]
		out[i*2+1] = hex[b&0x0f]
	}
	return string(out)
}
