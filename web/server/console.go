package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-smallpt/pkg/core"
)

// ConsoleMessage is one line of render output forwarded to the browser
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger echoes render output to a local writer, prefixed with the render
// ID, and forwards it to the SSE stream of that render
type WebLogger struct {
	renderID string
	console  chan<- ConsoleMessage // nil for renders without a stream
	out      io.Writer
}

// NewWebLogger returns a logger for one render that echoes to stdout
func NewWebLogger(renderID string, console chan<- ConsoleMessage) core.Logger {
	return &WebLogger{renderID: renderID, console: console, out: os.Stdout}
}

// Printf formats a message for both destinations. The render is never held up
// by a slow client: when the console buffer is full the message is dropped.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(wl.out, "[%s] %s", wl.renderID, message)

	if wl.console == nil {
		return
	}
	msg := ConsoleMessage{RenderID: wl.renderID, Message: message, Timestamp: time.Now(), Level: "info"}
	select {
	case wl.console <- msg:
	default:
	}
}
