// Package keccak provides the Keccak-256 hash: the pre-standardization
// Keccak sponge with delimiter 0x01 used by Ethereum, not NIST SHA3-256.
//
// The sponge runs keccak-f[1600] with a 136-byte rate (1088-bit rate,
// 512-bit capacity) and squeezes a 32-byte digest. The state is 25 lanes
// kept as a 200-byte little-endian buffer, so results do not depend on host
// byte order.
//
// Go's stdlib crypto/sha3 only exposes SHA-3 (domain 0x06), not Keccak-256
// (domain 0x01). This package is a portable pure-Go Keccak-256 with no heap
// allocations on the one-shot path.
package keccak

const (
	// rate is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	rate = 136

	// delimiter is Keccak's domain separation suffix (SHA-3 uses 0x06).
	delimiter = 0x01

	// Size is the length of a Keccak-256 digest in bytes.
	Size = 32

	// BlockSize is the number of bytes absorbed per permutation.
	BlockSize = rate
)

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size]byte {
	s := newSponge(rate, delimiter)
	s.update(data)

	var out [Size]byte
	s.finalize(&out)
	return out
}

// Keccak256 hashes the concatenation of data and returns the digest as a
// freshly allocated slice.
func Keccak256(data ...[]byte) []byte {
	s := newSponge(rate, delimiter)
	for _, b := range data {
		s.update(b)
	}

	out := new([Size]byte)
	s.finalize(out)
	return out[:]
}
