package keccak

import (
	"hash"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestHasherImplementsHash(t *testing.T) {
	var h hash.Hash = New()
	require.Equal(t, Size, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())

	_, err := io.Copy(h, strings.NewReader(strings.Repeat("keccak", 100)))
	require.NoError(t, err)

	ref := sha3.NewLegacyKeccak256()
	ref.Write([]byte(strings.Repeat("keccak", 100)))
	require.Equal(t, ref.Sum([]byte{0xff}), h.Sum([]byte{0xff}))
}

func TestHasherZeroValueMatchesNew(t *testing.T) {
	var zero Hasher
	fresh := New()
	zero.Update([]byte("zero value"))
	fresh.Update([]byte("zero value"))
	require.Equal(t, fresh.Sum256(), zero.Sum256())

	var untouched Hasher
	require.Equal(t, Sum256(nil), untouched.Sum256())
}

func TestHasherSumIsNonDestructive(t *testing.T) {
	h := New()
	h.Update([]byte("hello"))
	first := h.Sum256()
	require.Equal(t, first, h.Sum256())

	h.Update([]byte(" world"))
	require.Equal(t, Sum256([]byte("hello world")), h.Sum256())
}

func TestHasherFinalize(t *testing.T) {
	h := New()
	h.Update([]byte("hello"))

	var out [Size]byte
	h.Finalize(&out)
	require.Equal(t, Sum256([]byte("hello")), out)

	require.Panics(t, func() { h.Update([]byte("more")) })
	require.Panics(t, func() { h.Sum256() })

	h.Reset()
	h.Update([]byte("more"))
	require.Equal(t, Sum256([]byte("more")), h.Sum256())
}

func TestHasherCloneDiverges(t *testing.T) {
	prefix := testMessage(rate + 20)

	h := New()
	h.Update(prefix)
	left := h.Clone()
	right := *h // value copies checkpoint as well

	left.Update([]byte("left"))
	right.Update([]byte("right"))

	l, r := left.Sum256(), right.Sum256()
	require.NotEqual(t, l, r)
	require.Equal(t, Sum256(append(append([]byte(nil), prefix...), "left"...)), l)
	require.Equal(t, Sum256(append(append([]byte(nil), prefix...), "right"...)), r)

	// The source is unaffected by its clones.
	require.Equal(t, Sum256(prefix), h.Sum256())
}

func TestHasherReset(t *testing.T) {
	var h Hasher
	h.Update(testMessage(3 * rate))
	h.Reset()
	require.Equal(t, Sum256(nil), h.Sum256())
	require.True(t, h.s.untouched)
	require.Zero(t, h.s.permutations)
}

type recorder struct {
	events []Event
}

func (r *recorder) Trace(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) count(op Op) int {
	n := 0
	for _, ev := range r.events {
		if ev.Op == op {
			n++
		}
	}
	return n
}

func TestTracerRateBlock(t *testing.T) {
	rec := &recorder{}
	h := New(WithTracer(rec))

	h.Update(testMessage(rate))
	require.Equal(t, 1, rec.count(OpPermute))
	require.Equal(t, []Event{
		{Op: OpAbsorb, Offset: 0, Len: rate, Permutations: 0},
		{Op: OpPermute, Offset: rate, Len: 0, Permutations: 1},
	}, rec.events)

	var out [Size]byte
	h.Finalize(&out)
	require.Equal(t, 2, rec.count(OpPermute))
	require.Equal(t, []Event{
		{Op: OpPad, Offset: 0, Len: rate, Permutations: 1},
		{Op: OpPermute, Offset: 0, Len: 0, Permutations: 2},
		{Op: OpSqueeze, Offset: 0, Len: Size, Permutations: 2},
	}, rec.events[2:])
}

func TestTracerEmptyMessage(t *testing.T) {
	var ops []Op
	h := New(WithTracer(TracerFunc(func(ev Event) { ops = append(ops, ev.Op) })))
	h.Update(nil)

	var out [Size]byte
	h.Finalize(&out)
	require.Equal(t, []Op{OpPad, OpPermute, OpSqueeze}, ops)
	require.Equal(t, Sum256(nil), out)
}

func TestTracerSurvivesReset(t *testing.T) {
	rec := &recorder{}
	h := New(WithTracer(rec))
	h.Update([]byte("abc"))
	h.Reset()
	rec.events = nil

	h.Update([]byte("abc"))
	require.Equal(t, []Event{{Op: OpAbsorb, Offset: 0, Len: 3}}, rec.events)
}

func TestOpString(t *testing.T) {
	require.Equal(t, "absorb", OpAbsorb.String())
	require.Equal(t, "permute", OpPermute.String())
	require.Equal(t, "pad", OpPad.String())
	require.Equal(t, "squeeze", OpSqueeze.String())
	require.Equal(t, "op(9)", Op(9).String())
}
