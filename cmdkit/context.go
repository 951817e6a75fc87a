package cmdkit

import (
	"context"
	stdio "io"

	cmdio "github.com/dzonerzy/go-cmdkit/io"
	"github.com/dzonerzy/go-cmdkit/middleware"
)

// Context carries the parse outcome and runtime plumbing into a command
// handler. It satisfies middleware.Context.
type Context struct {
	App    *App
	Result *Result

	cmd *Command
	ctx context.Context
}

// Context returns the underlying Go context for cancellation/timeouts
func (c *Context) Context() context.Context {
	return c.ctx
}

// Done returns the cancellation channel of the underlying context
func (c *Context) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Err returns a non-nil error after Done is closed
func (c *Context) Err() error {
	return c.ctx.Err()
}

// Command returns the dispatched command (implements middleware.Context)
func (c *Context) Command() middleware.Command {
	return c.cmd
}

// Option access - delegates to Result

// Provided reports whether the option was present on the command line
func (c *Context) Provided(name string) bool {
	return c.Result.Provided(name)
}

// String retrieves a string option value (safe access)
func (c *Context) String(name string) (string, bool) {
	return c.Result.GetString(name)
}

// MustString retrieves a string option value with default fallback
func (c *Context) MustString(name, defaultValue string) string {
	return c.Result.MustGetString(name, defaultValue)
}

// Int retrieves an integer option value (safe access)
func (c *Context) Int(name string) (int, bool) {
	return c.Result.GetInt(name)
}

// MustInt retrieves an integer option value with default fallback
func (c *Context) MustInt(name string, defaultValue int) int {
	return c.Result.MustGetInt(name, defaultValue)
}

// Positional access

// Args returns positional arguments in encounter order
func (c *Context) Args() []string {
	return c.Result.Positionals()
}

// NArgs returns the number of positional arguments
func (c *Context) NArgs() int {
	return c.Result.NumPositionals()
}

// Arg returns the positional argument at index i, or "" out of range
func (c *Context) Arg(i int) string {
	return c.Result.Positional(i)
}

// IO accessors
func (c *Context) IO() *cmdio.IOManager { return c.App.IO() }
func (c *Context) Stdout() stdio.Writer { return c.App.IO().Out() }
func (c *Context) Stderr() stdio.Writer { return c.App.IO().Err() }
func (c *Context) Stdin() stdio.Reader  { return c.App.IO().In() }
