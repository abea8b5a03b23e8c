// Package zerolog adapts github.com/rs/zerolog to the logger.Logger
// interface, with a colored console writer for interactive use.
package zerolog

import (
	"os"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a ready to use logger. level is a zerolog level name such as
// "debug" or "info". With jsonFormat the raw structured events go to stdout;
// otherwise a console writer formats them for humans, colored unless colored
// is false.
func New(level, timeLayout string, colored, jsonFormat bool) (*Adapter, error) {
	mode, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(mode)

	if jsonFormat {
		l := log.Output(os.Stdout)
		return &Adapter{&l}, nil
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    !colored,
		TimeFormat: timeLayout,
	}
	output.FormatLevel = formatLevel
	output.FormatMessage = formatMessage
	output.FormatTimestamp = func(i interface{}) string {
		return formatTimestamp(i, timeLayout)
	}

	l := log.Output(output)
	return &Adapter{&l}, nil
}

func formatLevel(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return term.Whitef("[???]")
	}
	switch s {
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WRN]")
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue:
		return term.Redf("[ERR]")
	default:
		return term.Whitef("[???]")
	}
}

func formatMessage(i interface{}) string {
	const width = 64

	msg, ok := i.(string)
	if !ok || msg == "" {
		return ">"
	}
	if len(msg) > width {
		msg = msg[:width]
	} else {
		msg += strings.Repeat(" ", width-len(msg))
	}
	return term.Whitef("> %s", msg)
}

func formatTimestamp(i interface{}, layout string) string {
	s, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}
	ts, err := time.ParseInLocation(time.RFC3339, s, time.Local)
	if err == nil {
		s = ts.In(time.Local).Format(layout)
	}
	return term.Cyanf("[%s]", s)
}
