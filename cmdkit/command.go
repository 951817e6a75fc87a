package cmdkit

import "github.com/dzonerzy/go-cmdkit/middleware"

// HandlerFunc defines the command execution function
type HandlerFunc func(*Context) error

// Command binds a name to an option set and a handler. Commands form a flat
// dispatch table on the App; there is no subcommand nesting.
type Command struct {
	name        string
	description string
	helpText    string
	opts        *OptionSet
	action      HandlerFunc
	middleware  middleware.Chain
}

// Name returns the command name (implements middleware.Command)
func (c *Command) Name() string {
	return c.name
}

// Description returns the command description (implements middleware.Command)
func (c *Command) Description() string {
	return c.description
}

// Options returns the command's option set
func (c *Command) Options() *OptionSet {
	return c.opts
}

// CommandBuilder provides fluent API for building commands
type CommandBuilder struct {
	command *Command
	app     *App
}

// Flag declares a boolean option on the command
func (b *CommandBuilder) Flag(short rune, long, help string) *CommandBuilder {
	b.command.opts.Flag(short, long, help)
	return b
}

// String declares a string-valued option on the command
func (b *CommandBuilder) String(short rune, long, help string) *CommandBuilder {
	b.command.opts.String(short, long, help)
	return b
}

// Int declares an integer-valued option on the command
func (b *CommandBuilder) Int(short rune, long, help string) *CommandBuilder {
	b.command.opts.Int(short, long, help)
	return b
}

// Action sets the handler invoked after a successful parse
func (b *CommandBuilder) Action(fn HandlerFunc) *CommandBuilder {
	b.command.action = fn
	return b
}

// HelpText sets detailed help text for the command
func (b *CommandBuilder) HelpText(help string) *CommandBuilder {
	b.command.helpText = help
	return b
}

// Use adds middleware to the command
func (b *CommandBuilder) Use(mw ...middleware.Middleware) *CommandBuilder {
	b.command.middleware = b.command.middleware.Use(mw...)
	return b
}

// Back returns to the app for continued chaining
func (b *CommandBuilder) Back() *App {
	return b.app
}
