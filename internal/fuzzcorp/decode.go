package fuzzcorp

import "encoding/binary"

// decodeKeys groups raw corpus bytes into big-endian int32 keys, four bytes
// at a time, discarding any trailing partial group. This mirrors the way
// the original fuzz driver carved keys out of a libFuzzer byte slice.
func decodeKeys(data []byte) []int32 {
	n := len(data) / 4
	keys := make([]int32, n)
	for i := 0; i < n; i++ {
		keys[i] = int32(binary.BigEndian.Uint32(data[i*4 : i*4+4]))
	}
	return keys
}
