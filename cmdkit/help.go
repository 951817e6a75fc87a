package cmdkit

import (
	"fmt"
	"strings"
)

// showUsage renders the app-level usage listing all registered commands in
// registration order.
func (a *App) showUsage() error {
	io := a.IO()
	out := io.Out()

	if a.description != "" {
		fmt.Fprintf(out, "%s - %s\n", io.Bold(a.name), a.description)
	} else {
		fmt.Fprintf(out, "%s\n", io.Bold(a.name))
	}
	if a.version != "" {
		fmt.Fprintf(out, "Version: %s\n", a.version)
	}
	fmt.Fprintf(out, "\nUsage: %s <command> [options] [arguments]\n", a.name)

	if a.helpText != "" {
		fmt.Fprintf(out, "\n%s\n", a.helpText)
	}

	if len(a.order) > 0 {
		fmt.Fprintf(out, "\nCommands:\n")
		width := 0
		for _, name := range a.order {
			if len(name) > width {
				width = len(name)
			}
		}
		for _, name := range a.order {
			cmd := a.commands[name]
			fmt.Fprintf(out, "  %-*s  %s\n", width, cmd.name, cmd.description)
		}
		fmt.Fprintf(out, "\nUse \"%s help <command>\" for details about a command.\n", a.name)
	}

	return nil
}

// showCommandHelp renders usage for one command: its options in declaration
// order with both spellings, a value placeholder for non-flags and aligned
// help columns.
func (a *App) showCommandHelp(cmd *Command) error {
	io := a.IO()
	out := io.Out()

	fmt.Fprintf(out, "Usage: %s %s [options] [arguments]\n", a.name, io.Bold(cmd.name))
	if cmd.description != "" {
		fmt.Fprintf(out, "\n%s\n", cmd.description)
	}
	if cmd.helpText != "" {
		fmt.Fprintf(out, "\n%s\n", cmd.helpText)
	}

	opts := cmd.opts.Options()
	if len(opts) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nOptions:\n")
	width := 0
	for _, opt := range opts {
		if l := len(optionSpelling(opt)); l > width {
			width = l
		}
	}
	for _, opt := range opts {
		fmt.Fprintf(out, "  %-*s  %s\n", width, optionSpelling(opt), opt.Help)
	}

	return nil
}

// optionSpelling formats the left help column for one declaration, e.g.
// "-s, --string <string>" or "    --flag" or "-n <int>".
func optionSpelling(opt *Option) string {
	var b strings.Builder

	switch {
	case opt.Short != 0 && opt.Long != "":
		b.WriteString("-")
		b.WriteRune(opt.Short)
		b.WriteString(", --")
		b.WriteString(opt.Long)
	case opt.Long != "":
		b.WriteString("    --")
		b.WriteString(opt.Long)
	case opt.Short != 0:
		b.WriteString("-")
		b.WriteRune(opt.Short)
	}

	if opt.RequiresValue() {
		b.WriteString(" <")
		b.WriteString(opt.Kind.String())
		b.WriteString(">")
	}

	return b.String()
}

// showVersion prints the application version
func (a *App) showVersion() error {
	fmt.Fprintf(a.IO().Out(), "%s version %s\n", a.name, a.version)
	return nil
}
