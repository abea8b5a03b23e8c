package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plotkit/plotkit/pkg/logger"
)

// Adapter wraps a zerolog.Logger behind the logger.Logger interface.
type Adapter struct {
	*zerolog.Logger
}

// NewAdapter wraps an existing zerolog logger.
func NewAdapter(l *zerolog.Logger) *Adapter { return &Adapter{l} }

// GetLevel implements logger.Logger.
func (a *Adapter) GetLevel() logger.Level {
	return fromZerolog(a.Logger.GetLevel())
}

// SetLevel implements logger.Logger.
func (a *Adapter) SetLevel(level logger.Level) {
	zerolog.SetGlobalLevel(toZerolog(level))
}

// Debug implements logger.Logger.
func (a *Adapter) Debug(args ...any) {
	a.Logger.Debug().Msg(fmt.Sprint(args...))
}

// Info implements logger.Logger.
func (a *Adapter) Info(args ...any) {
	a.Logger.Info().Msg(fmt.Sprint(args...))
}

// Warn implements logger.Logger.
func (a *Adapter) Warn(args ...any) {
	a.Logger.Warn().Msg(fmt.Sprint(args...))
}

// Error implements logger.Logger.
func (a *Adapter) Error(args ...any) {
	a.Logger.Error().Msg(fmt.Sprint(args...))
}

// Fatal implements logger.Logger.
func (a *Adapter) Fatal(args ...any) {
	a.Logger.Fatal().Msg(fmt.Sprint(args...))
}

// Debugf implements logger.Logger.
func (a *Adapter) Debugf(format string, args ...any) {
	a.Logger.Debug().Msgf(format, args...)
}

// Infof implements logger.Logger.
func (a *Adapter) Infof(format string, args ...any) {
	a.Logger.Info().Msgf(format, args...)
}

// Warnf implements logger.Logger.
func (a *Adapter) Warnf(format string, args ...any) {
	a.Logger.Warn().Msgf(format, args...)
}

// Errorf implements logger.Logger.
func (a *Adapter) Errorf(format string, args ...any) {
	a.Logger.Error().Msgf(format, args...)
}

// Fatalf implements logger.Logger.
func (a *Adapter) Fatalf(format string, args ...any) {
	a.Logger.Fatal().Msgf(format, args...)
}

// WithField implements logger.Logger.
func (a *Adapter) WithField(key string, value any) logger.Logger {
	l := a.With().Interface(key, value).Logger()
	return &Adapter{&l}
}

// WithFields implements logger.Logger.
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	l := a.With().Fields(fields).Logger()
	return &Adapter{&l}
}

// WithError implements logger.Logger.
func (a *Adapter) WithError(err error) logger.Logger {
	l := a.With().Err(err).Logger()
	return &Adapter{&l}
}

func fromZerolog(level zerolog.Level) logger.Level {
	switch level {
	case zerolog.Disabled:
		return logger.Disabled
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return logger.DebugLevel
	case zerolog.InfoLevel:
		return logger.InfoLevel
	case zerolog.WarnLevel:
		return logger.WarnLevel
	case zerolog.ErrorLevel:
		return logger.ErrorLevel
	default:
		return logger.FatalLevel
	}
}

func toZerolog(level logger.Level) zerolog.Level {
	switch level {
	case logger.Disabled:
		return zerolog.Disabled
	case logger.DebugLevel:
		return zerolog.DebugLevel
	case logger.InfoLevel:
		return zerolog.InfoLevel
	case logger.WarnLevel:
		return zerolog.WarnLevel
	case logger.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
