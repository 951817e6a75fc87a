package cmdio

// ANSI SGR codes for the helpers below
const (
	codeReset     = "0"
	codeBold      = "1"
	codeFaint     = "2"
	codeUnderline = "4"
	codeRed       = "31"
	codeGreen     = "32"
	codeYellow    = "33"
	codeCyan      = "36"
)

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[" + codeReset + "m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, codeBold) }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, codeFaint) }

// Underline returns s underlined when supported; otherwise s unchanged.
func (m *IOManager) Underline(s string) string { return m.Colorize(s, codeUnderline) }

// Red returns s in red when supported; used for error rendering.
func (m *IOManager) Red(s string) string { return m.Colorize(s, codeRed) }

// Green returns s in green when supported.
func (m *IOManager) Green(s string) string { return m.Colorize(s, codeGreen) }

// Yellow returns s in yellow when supported.
func (m *IOManager) Yellow(s string) string { return m.Colorize(s, codeYellow) }

// Cyan returns s in cyan when supported.
func (m *IOManager) Cyan(s string) string { return m.Colorize(s, codeCyan) }
