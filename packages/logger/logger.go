// Package logger prints timestamped lines for smoke-test runs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/abdul-hamid-achik/apismoke/packages/http"
)

// TimeFormat is the layout of the line prefix (local wall clock).
const TimeFormat = "15:04:05"

type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	now    func() time.Time
}

type Option func(*Logger)

// New returns a Logger writing to stdout.
func New(opts ...Option) *Logger {
	l := &Logger{
		writer: os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.writer = w
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// Log writes the arguments separated by spaces after a timestamp.
func (l *Logger) Log(args ...any) {
	l.write(fmt.Sprintln(args...))
}

// Logf writes a formatted line after a timestamp.
func (l *Logger) Logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	l.write(line)
}

func (l *Logger) write(line string) {
	stamp := l.now().Local().Format(TimeFormat)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.writer, stamp+" "+line)
}

// HTTP logs the URL, method, status code and the response, data and message
// fields of resp, one timestamped line each, followed by a blank line.
// A body that is not JSON prints the defaults (failed, {} and an empty
// message) and never aborts the run.
func (l *Logger) HTTP(resp *http.Response) {
	l.Logf("Url: %s", resp.URL)
	l.Logf("Method: %s", resp.Method)
	l.Logf("StatusCode: %d", resp.StatusCode)
	l.Logf("Success: %s", resp.Success())
	l.Logf("Content: <%s>", resp.Data())
	l.Logf("Message: %s\n\n", resp.Message())
}
