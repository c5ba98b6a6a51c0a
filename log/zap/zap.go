package zap

import (
	"sort"

	"github.com/unkn0wn-root/ghostext"
	"go.uber.org/zap"
)

var _ ghostext.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New wraps l; a nil l logs nothing.
func New(l *zap.Logger) ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{L: l.Named("ghostext")}
}

func (z ZapLogger) Debug(msg string, f ghostext.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f ghostext.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f ghostext.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f ghostext.Fields) { z.L.Error(msg, zf(f)...) }

// zf converts f in key order so identical events render identically.
func zf(f ghostext.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
