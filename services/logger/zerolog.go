package logsvc

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/auth"
)

// ZeroLogger writes structured log lines with zerolog.
type ZeroLogger struct {
	zl zerolog.Logger
}

var _ core.Logger = (*ZeroLogger)(nil)

func NewZeroLogger(conf *core.Config) *ZeroLogger {
	var out io.Writer = os.Stdout
	if conf.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewZeroLoggerWithWriter(out, conf)
}

func NewZeroLoggerWithWriter(out io.Writer, conf *core.Config) *ZeroLogger {
	level, err := zerolog.ParseLevel(strings.ToLower(conf.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", conf.AppName).
		Str("env", conf.Env).
		Logger()
	return &ZeroLogger{zl: zl}
}

// expected args: error, map[string]interface{}, auth.User; anything else goes under "extra"
func (l *ZeroLogger) write(ev *zerolog.Event, msg string, args []interface{}) {
	var extra []interface{}
	for _, arg := range args {
		switch a := arg.(type) {
		case error:
			ev = ev.Err(a)
		case map[string]interface{}:
			ev = ev.Fields(a)
		case auth.User:
			ev = ev.Str("user_id", a.ID).Str("user_email", a.Email)
		default:
			extra = append(extra, a)
		}
	}
	if len(extra) > 0 {
		ev = ev.Interface("extra", extra)
	}
	ev.Msg(msg)
}

func (l *ZeroLogger) Debug(msg string, args ...interface{}) { l.write(l.zl.Debug(), msg, args) }
func (l *ZeroLogger) Info(msg string, args ...interface{})  { l.write(l.zl.Info(), msg, args) }
func (l *ZeroLogger) Warn(msg string, args ...interface{})  { l.write(l.zl.Warn(), msg, args) }
func (l *ZeroLogger) Error(msg string, args ...interface{}) { l.write(l.zl.Error(), msg, args) }

// Fatal logs then exits the process.
func (l *ZeroLogger) Fatal(msg string, args ...interface{}) { l.write(l.zl.Fatal(), msg, args) }
