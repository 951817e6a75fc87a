package middleware

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dzonerzy/go-cmdkit/internal/pool"
)

// requestInfoPool recycles RequestInfo objects across invocations
var requestInfoPool = pool.NewPoolWithReset(
	func() *RequestInfo {
		return &RequestInfo{}
	},
	func(info *RequestInfo) {
		info.Command = ""
		info.Args = info.Args[:0]
		info.StartTime = time.Time{}
		info.Duration = 0
		info.Error = nil
	},
)

// LoggerOption configures the Logger middleware
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	output      io.Writer
	includeArgs bool
}

// WithOutput redirects log entries to w (default: stderr)
func WithOutput(w io.Writer) LoggerOption {
	return func(c *loggerConfig) { c.output = w }
}

// WithoutArgs omits positional arguments from log entries
func WithoutArgs() LoggerOption {
	return func(c *loggerConfig) { c.includeArgs = false }
}

// Logger creates a middleware that logs each command invocation with its
// outcome and duration.
func Logger(options ...LoggerOption) Middleware {
	config := &loggerConfig{
		output:      os.Stderr,
		includeArgs: true,
	}
	for _, option := range options {
		option(config)
	}

	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			info := requestInfoPool.Get()
			defer requestInfoPool.Put(info)

			info.Command = getCommandName(ctx)
			info.Args = append(info.Args, ctx.Args()...)
			info.StartTime = time.Now()

			err := next(ctx)

			info.Duration = time.Since(info.StartTime)
			info.Error = err

			logRequest(config, info)
			return err
		}
	}
}

// logRequest writes one text log entry for a completed invocation
func logRequest(config *loggerConfig, info *RequestInfo) {
	status := "SUCCESS"
	if info.Error != nil {
		status = "ERROR"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] command=%s duration=%s", status, info.Command, info.Duration.Round(time.Microsecond))
	if config.includeArgs && len(info.Args) > 0 {
		fmt.Fprintf(&b, " args=%q", info.Args)
	}
	if info.Error != nil {
		fmt.Fprintf(&b, " error=%q", info.Error.Error())
	}
	b.WriteByte('\n')

	fmt.Fprint(config.output, b.String())
}
