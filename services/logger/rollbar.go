package logsvc

import (
	"github.com/rollbar/rollbar-go"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/auth"
)

// RollbarLogger reports warnings and errors to Rollbar and forwards every call to next.
type RollbarLogger struct {
	next core.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(next core.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetEnabled(conf.RollbarToken != "")
	return &RollbarLogger{next: next}
}

// NewLogger returns the application logger: zerolog, wrapped by Rollbar when a token is configured.
func NewLogger(conf *core.Config) core.Logger {
	zl := NewZeroLogger(conf)
	if conf.RollbarToken == "" {
		return zl
	}
	return NewRollbarLogger(zl, conf)
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// Wait blocks until queued reports are sent.
func (l RollbarLogger) Wait() {
	rollbar.Wait()
}

// expected fmt: msg | error, map[string]interface{}, auth.User
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var usrSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		// set logged in User
		if usr, ok := arg.(auth.User); ok {
			if !usrSet { // only set one User
				rollbar.SetPerson(usr.ID, usr.Name, usr.Email)
				usrSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !usrSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	l.next.Debug(msg, args...)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	l.next.Info(msg, args...)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.next.Warn(msg, args...)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.next.Error(msg, args...)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	rollbar.Wait()
	l.next.Fatal(msg, args...)
}
