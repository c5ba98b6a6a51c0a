package ghostext

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Field keys used by Codec log lines.
const (
	FieldPayloadBytes = "payload_bytes"
	FieldTextBytes    = "text_bytes"
	FieldMembers      = "members"
	FieldCarriers     = "carriers"
	FieldPlacement    = "placement"
	FieldErr          = "err"
)

// Logger is a tiny leveled logger. Adapters for zap, logrus and slog live
// under log/. A nil Logger in Options disables logging.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
