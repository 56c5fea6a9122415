package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "debug" or "production"
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDebug       = "debug"
	EncodingConsole = "console"
	EncodingJSON    = "json"

	FieldRequestID = "request_id"
)
