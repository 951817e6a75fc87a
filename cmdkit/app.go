package cmdkit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dzonerzy/go-cmdkit/internal/fuzzy"
	cmdio "github.com/dzonerzy/go-cmdkit/io"
	"github.com/dzonerzy/go-cmdkit/middleware"
)

// App is the command dispatcher: a flat, name-keyed table of commands, each
// owning its option set. Parsing starts after the command name; the app
// hands the engine the sub-slice of the argument vector and routes the
// outcome to the command's handler.
type App struct {
	name        string
	description string
	helpText    string
	version     string

	commands map[string]*Command
	order    []string // registration order for help output

	middleware middleware.Chain

	ioManager *cmdio.IOManager
	exitCodes *ExitCodeManager

	// maximum edit distance for unknown-command suggestions
	maxDistance int
}

// New creates a new CLI application with fluent API
func New(name, description string) *App {
	return &App{
		name:        name,
		description: description,
		commands:    make(map[string]*Command),
		order:       make([]string, 0, 8),
		ioManager:   cmdio.New(),
		maxDistance: 2,
	}
}

// Version sets the application version, enabling the version surface
func (a *App) Version(version string) *App {
	a.version = version
	return a
}

// HelpText sets detailed help text for the application
func (a *App) HelpText(help string) *App {
	a.helpText = help
	return a
}

// Use adds middleware applied to every command action
func (a *App) Use(mw ...middleware.Middleware) *App {
	a.middleware = a.middleware.Use(mw...)
	return a
}

// IO returns the application's IOManager for fluent configuration.
func (a *App) IO() *cmdio.IOManager {
	if a.ioManager == nil {
		a.ioManager = cmdio.New()
	}
	return a.ioManager
}

// Command registers a command and returns its builder
func (a *App) Command(name, description string) *CommandBuilder {
	cmd := &Command{
		name:        name,
		description: description,
		opts:        NewOptionSet(),
	}
	if _, exists := a.commands[name]; !exists {
		a.order = append(a.order, name)
	}
	a.commands[name] = cmd
	return &CommandBuilder{command: cmd, app: a}
}

// Lookup resolves a registered command by name
func (a *App) Lookup(name string) (*Command, bool) {
	cmd, ok := a.commands[name]
	return cmd, ok
}

// ExitCodes returns the exit-code manager for this app. Use it to override
// the default mappings before Run.
func (a *App) ExitCodes() *ExitCodeManager {
	if a.exitCodes == nil {
		a.exitCodes = newExitCodeManager()
	}
	return a.exitCodes
}

// Execution methods

// Run dispatches os.Args and executes the selected command
func (a *App) Run() error {
	return a.RunContext(context.Background())
}

// RunContext runs the application with a context for cancellation
func (a *App) RunContext(ctx context.Context) error {
	return a.RunWithArgs(ctx, os.Args[1:])
}

// RunWithArgs dispatches the provided argument vector. argv[0] is the
// command name position (the program name is already stripped); everything
// after it goes to the parsing engine with the command's option set.
func (a *App) RunWithArgs(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return a.showUsage()
	}

	name := argv[0]
	switch name {
	case "help", "--help", "-h":
		if len(argv) > 1 {
			if cmd, ok := a.commands[argv[1]]; ok {
				return a.showCommandHelp(cmd)
			}
		}
		return a.showUsage()
	case "version", "--version":
		if a.version != "" {
			return a.showVersion()
		}
	}

	cmd, ok := a.commands[name]
	if !ok {
		parseErr := &ParseError{
			Type:       ErrorTypeUnknownCommand,
			Message:    "unknown command: " + name,
			Command:    name,
			Suggestion: fuzzy.FindBestCommand(name, a.order, a.maxDistance),
		}
		a.renderParseError(parseErr)
		_ = a.showUsage()
		return parseErr
	}

	parser := NewParser(cmd.opts)
	defer parser.Release()

	result, err := parser.Parse(argv[1:])
	if err != nil {
		parseErr := &ParseError{}
		if errors.As(err, &parseErr) {
			a.renderParseError(parseErr)
		}
		return err
	}

	if cmd.action == nil {
		return a.showCommandHelp(cmd)
	}

	execCtx := &Context{
		App:    a,
		Result: result,
		cmd:    cmd,
		ctx:    ctx,
	}
	return a.wrapActionWithMiddleware(cmd.action, cmd)(execCtx)
}

// wrapActionWithMiddleware applies app-level then command-level middleware
func (a *App) wrapActionWithMiddleware(action HandlerFunc, cmd *Command) HandlerFunc {
	if len(a.middleware) == 0 && len(cmd.middleware) == 0 {
		return action
	}

	chain := make(middleware.Chain, 0, len(a.middleware)+len(cmd.middleware))
	chain = append(chain, a.middleware...)
	chain = append(chain, cmd.middleware...)

	wrapped := chain.Apply(func(mc middleware.Context) error {
		return action(mc.(*Context))
	})
	return func(ctx *Context) error {
		return wrapped(ctx)
	}
}

// RunAndGetExitCode executes the app and returns the mapped exit code
// according to ExitCodes(). Useful for embedding in main() without os.Exit.
func (a *App) RunAndGetExitCode() int {
	return a.ExitCodes().resolve(a.Run())
}

// RunAndExit executes the app and exits the process with the mapped code
func (a *App) RunAndExit() {
	os.Exit(a.RunAndGetExitCode())
}

// Error rendering

// renderParseError writes the human-readable message for a parse failure,
// one line per error plus an optional suggestion line.
func (a *App) renderParseError(parseErr *ParseError) {
	io := a.IO()
	fmt.Fprintf(io.Err(), "%s %s\n", io.Red("Error:"), parseErr.Message)
	if parseErr.Suggestion != "" {
		switch parseErr.Type {
		case ErrorTypeUnknownCommand:
			fmt.Fprintf(io.Err(), "  Did you mean '%s'?\n", parseErr.Suggestion)
		default:
			fmt.Fprintf(io.Err(), "  Did you mean '--%s'?\n", parseErr.Suggestion)
		}
	}
}
