package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// SampleHash fingerprints the exact observations a result was computed from.
// Results fitted from a bare statistic carry no hash.
type SampleHash string

func (h SampleHash) String() string { return string(h) }

// ComputeSampleHash hashes the IEEE-754 bits of every observation in order,
// so two samples share a fingerprint only if they are bit-identical.
func ComputeSampleHash(sample []float64) SampleHash {
	buf := make([]byte, 8*len(sample))
	for i, x := range sample {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}
	sum := sha256.Sum256(buf)
	return SampleHash(hex.EncodeToString(sum[:]))
}
