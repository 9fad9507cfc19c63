package keccak

import "hash"

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming Keccak-256 hasher. Designed for stack allocation:
// the zero value is ready to use, and copying a Hasher value checkpoints the
// absorbed input.
type Hasher struct {
	s sponge
}

// New returns a Keccak-256 hasher configured by opts.
func New(opts ...Option) *Hasher {
	h := &Hasher{s: newSponge(rate, delimiter)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// init lazily configures the zero value.
func (h *Hasher) init() {
	if h.s.rate == 0 {
		tracer := h.s.tracer
		h.s = newSponge(rate, delimiter)
		h.s.tracer = tracer
	}
}

// Update absorbs p into the hasher. It panics after Finalize.
func (h *Hasher) Update(p []byte) {
	h.init()
	h.s.update(p)
}

// Write absorbs p. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Finalize pads the absorbed input and writes the digest to out. The hasher
// must be Reset before it can absorb again.
func (h *Hasher) Finalize(out *[Size]byte) {
	h.init()
	h.s.finalize(out)
}

// Sum256 finalizes and returns the 32-byte Keccak-256 digest.
// Does not modify the hasher state. It panics after Finalize.
func (h *Hasher) Sum256() [Size]byte {
	h.init()
	s := h.s
	var out [Size]byte
	s.finalize(&out)
	return out
}

// Sum appends the current digest to b without changing the hasher state.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum256()
	return append(b, d[:]...)
}

// Clone returns an independent copy of the hasher, including its tracer.
func (h *Hasher) Clone() *Hasher {
	h.init()
	c := *h
	return &c
}

// Reset resets the hasher to its initial state. The tracer is kept.
func (h *Hasher) Reset() {
	h.init()
	h.s.reset()
}

// Size returns the digest length, 32 bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the sponge rate, 136 bytes.
func (h *Hasher) BlockSize() int { return BlockSize }
