// Package log defines the logger collaborator passed through to the remote
// transport on every data store call.
package log

import (
	"fmt"
	"log/slog"
)

// Logger is the minimal logging contract a caller supplies per operation.
type Logger interface {
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// Default adapts log/slog to the Logger contract.
type Default struct {
	Slog *slog.Logger
}

func (d *Default) logger() *slog.Logger {
	if d.Slog != nil {
		return d.Slog
	}
	return slog.Default()
}

func (d *Default) Errorf(format string, args ...any) {
	d.logger().Error(fmt.Sprintf(format, args...))
}

func (d *Default) Infof(format string, args ...any) {
	d.logger().Info(fmt.Sprintf(format, args...))
}

func (d *Default) Debugf(format string, args ...any) {
	d.logger().Debug(fmt.Sprintf(format, args...))
}

// Nop discards everything; used when the caller passes no logger.
type Nop struct{}

func (Nop) Errorf(string, ...any) {}
func (Nop) Infof(string, ...any)  {}
func (Nop) Debugf(string, ...any) {}
