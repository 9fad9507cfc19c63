package keccak

import "strconv"

// Op identifies a sponge step reported to a Tracer.
type Op uint8

const (
	OpAbsorb Op = iota + 1
	OpPermute
	OpPad
	OpSqueeze
)

func (op Op) String() string {
	switch op {
	case OpAbsorb:
		return "absorb"
	case OpPermute:
		return "permute"
	case OpPad:
		return "pad"
	case OpSqueeze:
		return "squeeze"
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Event describes one sponge step.
//
// Offset is the absorption position in the state when the step started and
// Len the number of bytes it touched (zero for OpPermute). Permutations is the
// number of keccak-f calls the session has made once the step is done.
type Event struct {
	Op           Op
	Offset       int
	Len          int
	Permutations int
}

// Tracer receives sponge events. It is called synchronously from the hashing
// goroutine and must not retain or mutate hasher state.
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts an ordinary function to the Tracer interface.
type TracerFunc func(Event)

func (f TracerFunc) Trace(ev Event) { f(ev) }

// Option configures a Hasher created by New.
type Option func(*Hasher)

// WithTracer installs t as the event sink of the hasher. A nil t disables
// tracing.
func WithTracer(t Tracer) Option {
	return func(h *Hasher) {
		h.s.tracer = t
	}
}
