// Package zaptrace logs Keccak sponge events through zap.
package zaptrace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	keccak "github.com/Giulio2002/keccak256"
)

// New returns a keccak.Tracer writing one debug entry per sponge event to l.
// Nothing is encoded when l has debug disabled.
func New(l *zap.Logger) keccak.Tracer {
	return keccak.TracerFunc(func(ev keccak.Event) {
		ce := l.Check(zapcore.DebugLevel, "keccak sponge")
		if ce == nil {
			return
		}
		ce.Write(
			zap.Stringer("op", ev.Op),
			zap.Int("offset", ev.Offset),
			zap.Int("len", ev.Len),
			zap.Int("permutations", ev.Permutations),
		)
	})
}
