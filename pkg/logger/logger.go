package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off entirely.
	DebugLevel Level = iota // DebugLevel is used for renderer internals.
	InfoLevel               // InfoLevel is used for normal progress messages.
	WarnLevel               // WarnLevel is used for recoverable problems.
	ErrorLevel              // ErrorLevel is used for failed operations.
	FatalLevel              // FatalLevel logs and exits the program.
)

// Logger is the logging surface the toolkit writes to. Library code only
// takes this interface so callers can plug in their own backend.
type Logger interface {
	// Returns a logger decorated with the given context.
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}

// Nop discards everything. It is the default for library code when the
// caller wires no logger.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) WithField(string, any) Logger { return nopLogger{} }

func (nopLogger) WithFields(map[string]any) Logger { return nopLogger{} }

func (nopLogger) WithError(error) Logger { return nopLogger{} }

func (nopLogger) Debug(...any) {}
func (nopLogger) Info(...any)  {}
func (nopLogger) Warn(...any)  {}
func (nopLogger) Error(...any) {}
func (nopLogger) Fatal(...any) {}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
func (nopLogger) Fatalf(string, ...any) {}

func (nopLogger) SetLevel(Level)  {}
func (nopLogger) GetLevel() Level { return Disabled }
