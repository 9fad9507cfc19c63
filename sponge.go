package keccak

import (
	"crypto/subtle"
	"strconv"
)

// stateSize is the keccak-f[1600] state width in bytes.
const stateSize = 200

// sponge is a Keccak sponge session over a fixed rate and domain delimiter.
// It owns its whole state by value, so copying a sponge yields an independent
// checkpoint.
type sponge struct {
	a [stateSize]byte // 25 little-endian lanes

	offset int // absorption position, always < rate between calls
	rate   int
	delim  byte

	// untouched is true until the first permutation. Absorbing into the
	// all-zero state can then overwrite instead of XOR.
	untouched bool
	finalized bool

	permutations int
	tracer       Tracer
}

func newSponge(rate int, delim byte) sponge {
	if rate <= 0 || rate >= stateSize {
		panic("keccak: invalid sponge rate " + strconv.Itoa(rate))
	}
	return sponge{rate: rate, delim: delim, untouched: true}
}

// update absorbs p, permuting once per completed rate-sized block.
func (s *sponge) update(p []byte) {
	if s.finalized {
		panic("keccak: update after finalize")
	}
	for len(p) > 0 {
		n := min(s.rate-s.offset, len(p))
		dst := s.a[s.offset : s.offset+n]
		if s.untouched {
			copy(dst, p[:n])
		} else {
			subtle.XORBytes(dst, dst, p[:n])
		}
		s.trace(OpAbsorb, s.offset, n)
		s.offset += n
		p = p[n:]

		if s.offset == s.rate {
			s.permute()
			s.offset = 0
		}
	}
}

// pad applies pad10*1 with the session delimiter. When offset == rate-1 both
// XORs land on the same byte.
func (s *sponge) pad() {
	s.a[s.offset] ^= s.delim
	s.a[s.rate-1] ^= 0x80
	s.trace(OpPad, s.offset, s.rate-s.offset)
}

func (s *sponge) permute() {
	permute(&s.a)
	s.untouched = false
	s.permutations++
	s.trace(OpPermute, s.offset, 0)
}

// squeeze fills out from the rate part of the state, permuting between
// blocks when out is longer than the rate.
func (s *sponge) squeeze(out []byte) {
	for {
		n := copy(out, s.a[:s.rate])
		s.trace(OpSqueeze, 0, n)
		out = out[n:]
		if len(out) == 0 {
			return
		}
		s.permute()
	}
}

// finalize pads, permutes and squeezes the digest. The session cannot absorb
// afterwards.
func (s *sponge) finalize(out *[Size]byte) {
	if s.finalized {
		panic("keccak: finalize called twice")
	}
	s.pad()
	s.permute()
	s.squeeze(out[:])
	s.finalized = true
}

// reset returns the session to its freshly constructed state.
func (s *sponge) reset() {
	*s = sponge{rate: s.rate, delim: s.delim, untouched: true, tracer: s.tracer}
}

func (s *sponge) trace(op Op, offset, n int) {
	if s.tracer == nil {
		return
	}
	s.tracer.Trace(Event{Op: op, Offset: offset, Len: n, Permutations: s.permutations})
}
