package middleware

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

const defaultStackSize = 4096

// RecoveryOption configures the Recovery middleware
type RecoveryOption func(*recoveryConfig)

type recoveryConfig struct {
	output     io.Writer
	printStack bool
	stackSize  int
}

// WithStackTrace controls whether a stack trace is printed on panic
func WithStackTrace(enabled bool) RecoveryOption {
	return func(c *recoveryConfig) { c.printStack = enabled }
}

// WithRecoveryOutput redirects panic reports to w (default: stderr)
func WithRecoveryOutput(w io.Writer) RecoveryOption {
	return func(c *recoveryConfig) { c.output = w }
}

// Recovery creates a middleware that converts panics during command
// execution into a *RecoveryError.
func Recovery(options ...RecoveryOption) Middleware {
	config := &recoveryConfig{
		output:     os.Stderr,
		printStack: true,
		stackSize:  defaultStackSize,
	}
	for _, option := range options {
		option(config)
	}

	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var stack []byte
					if config.printStack {
						stack = make([]byte, config.stackSize)
						length := runtime.Stack(stack, false)
						stack = stack[:length]
					}

					recoveryErr := &RecoveryError{
						Panic:   r,
						Command: getCommandName(ctx),
						Stack:   stack,
					}

					if config.printStack && len(stack) > 0 {
						fmt.Fprintf(config.output, "PANIC in command '%s': %v\n", recoveryErr.Command, r)
						fmt.Fprintf(config.output, "Stack trace:\n%s\n", stack)
					}

					err = recoveryErr
				}
			}()

			return next(ctx)
		}
	}
}

// RecoveryToError creates a recovery middleware that converts panics to
// regular errors without printing stack traces (useful for production)
func RecoveryToError() Middleware {
	return Recovery(WithStackTrace(false))
}
