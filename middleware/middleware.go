// Package middleware provides built-in middleware for go-cmdkit command
// actions: Logger and Recovery.
package middleware

import (
	"fmt"
	"time"
)

// This package defines middleware using interfaces to avoid import cycles.
// The cmdkit package imports this package and its types satisfy these
// interfaces; users work with concrete types from cmdkit: cmdkit.Context etc.

// Context describes the runtime information middleware can rely on. It is
// implemented by *cmdkit.Context.
type Context interface {
	// Command returns the dispatched command descriptor (name/description)
	Command() Command

	// Args returns the positional (non-option) arguments of the current
	// invocation. The returned slice should be treated as read-only.
	Args() []string

	// Provided reports whether an option was present on the command line
	Provided(name string) bool

	// String returns a string option value and whether it is present
	String(name string) (string, bool)

	// Int returns an integer option value and whether it is present
	Int(name string) (int, bool)
}

// Command is satisfied by *cmdkit.Command
type Command interface {
	Name() string
	Description() string
}

// ActionFunc represents the command action function signature
type ActionFunc func(ctx Context) error

// Middleware defines the middleware function signature
type Middleware func(next ActionFunc) ActionFunc

// Chain represents an ordered chain of middleware
type Chain []Middleware

// Apply wraps action with the chain; middleware run in declaration order.
func (c Chain) Apply(action ActionFunc) ActionFunc {
	for i := len(c) - 1; i >= 0; i-- {
		action = c[i](action)
	}
	return action
}

// Use returns a new chain with the provided middleware appended.
func (c Chain) Use(middleware ...Middleware) Chain {
	return append(c, middleware...)
}

// RecoveryError represents a recovered panic
type RecoveryError struct {
	Panic   any
	Command string
	Stack   []byte
}

func (e *RecoveryError) Error() string {
	return "command '" + e.Command + "' panicked: " + toString(e.Panic)
}

// RequestInfo carries per-invocation bookkeeping for the Logger middleware
type RequestInfo struct {
	Command   string
	Args      []string
	StartTime time.Time
	Duration  time.Duration
	Error     error
}

func toString(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(string); ok {
		return s
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", v)
}

func getCommandName(ctx Context) string {
	cmd := ctx.Command()
	if cmd == nil {
		return "unknown"
	}
	return cmd.Name()
}
