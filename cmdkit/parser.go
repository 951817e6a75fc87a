package cmdkit

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-cmdkit/internal/fuzzy"
)

// Parser walks an argument vector left to right against one OptionSet and
// produces a Result or the first ParseError encountered. It performs no IO
// and allocates nothing on the happy path once warm: the Result and its
// storage are reused across Parse calls.
//
// A Parser is bound to a single caller; concurrent Parse calls require
// independent Parser instances.
type Parser struct {
	set      *OptionSet
	position int
	result   *Result

	// maximum edit distance for unknown-option suggestions
	maxDistance int
}

// NewParser creates a parser over the given option set
func NewParser(set *OptionSet) *Parser {
	return &Parser{
		set:         set,
		result:      resultPool.Get(),
		maxDistance: 2,
	}
}

// Parse classifies tokens into options and positionals, one token lookahead
// only. The args slice excludes the program name and the command name (the
// caller passes the sub-slice after them). Against a nil or empty set every
// option-looking token is an unknown option and everything else a positional.
//
// The returned Result is valid until the next Parse call on this parser.
func (p *Parser) Parse(args []string) (*Result, error) {
	// Reset all per-parse state so schemas are safely reusable
	p.position = 0
	p.result.clear()
	p.result.set = p.set

	for p.position < len(args) {
		if err := p.parseArgument(args[p.position], args); err != nil {
			return nil, err
		}
		p.position++
	}

	return p.result, nil
}

// parseArgument classifies a single token.
//
// A bare "-" is not a short option marker and falls through to the
// positional branch, as does the empty token. A bare "--" takes the long
// option path with an empty candidate name and therefore fails as an
// unknown option; this engine has no "--" terminator semantics.
func (p *Parser) parseArgument(arg string, args []string) error {
	switch {
	case len(arg) >= 2 && arg[0] == '-' && arg[1] == '-':
		return p.parseLongOption(arg, args)
	case len(arg) >= 2 && arg[0] == '-':
		return p.parseShortOption(arg, args)
	default:
		p.result.positionals = append(p.result.positionals, arg)
		return nil
	}
}

// parseLongOption handles --name, --name=value and --name value forms
func (p *Parser) parseLongOption(arg string, args []string) error {
	body := arg[2:]

	name := body
	value := ""
	hasValue := false
	if eq := strings.IndexByte(body, '='); eq != -1 {
		name = body[:eq]
		value = body[eq+1:]
		hasValue = true
	}

	opt := p.set.findLong(name)
	if opt == nil {
		return p.unknownOption("--"+name, name)
	}

	// Flags never consume a following token; an attached value is ignored
	if opt.Kind == KindFlag {
		return p.storeValue(opt, "")
	}

	if !hasValue {
		next, ok := p.lookahead(args)
		if !ok {
			return p.missingValue("--" + name)
		}
		p.position++
		value = next
	}

	return p.storeValue(opt, value)
}

// parseShortOption handles -x, -xVALUE and -x VALUE forms. The short name
// is the first rune after the dash; for flags any trailing characters are
// ignored rather than expanded into further options.
func (p *Parser) parseShortOption(arg string, args []string) error {
	short, size := utf8.DecodeRuneInString(arg[1:])

	opt := p.set.findShort(short)
	if opt == nil {
		return p.unknownShortOption(short)
	}

	if opt.Kind == KindFlag {
		return p.storeValue(opt, "")
	}

	// Attached value wins: -sVALUE
	if attached := arg[1+size:]; attached != "" {
		return p.storeValue(opt, attached)
	}

	next, ok := p.lookahead(args)
	if !ok {
		return p.missingValue("-" + string(short))
	}
	p.position++
	return p.storeValue(opt, next)
}

// lookahead returns the next token when it may serve as an option value.
// A token "looks like an option" purely by its first byte being '-', so a
// negative number as a separate token is never consumed; callers must use
// the attached forms (-n-5, --number=-5).
func (p *Parser) lookahead(args []string) (string, bool) {
	if p.position+1 >= len(args) {
		return "", false
	}
	next := args[p.position+1]
	if len(next) > 0 && next[0] == '-' {
		return "", false
	}
	return next, true
}

// storeValue marks the option provided and records its value. A repeated
// option overwrites the previous occurrence: last one wins.
func (p *Parser) storeValue(opt *Option, value string) error {
	name := opt.Name()

	switch opt.Kind {
	case KindFlag:
		// Presence only, no value

	case KindString:
		// Stored verbatim: no escaping, no quote stripping
		p.result.strings[name] = value

	case KindInt:
		n, err := parseInt(value)
		if err != nil {
			return &ParseError{
				Type:    ErrorTypeInvalidValue,
				Message: "invalid integer value: " + value,
				Option:  name,
			}
		}
		p.result.ints[name] = n
	}

	p.result.provided[name] = true
	return nil
}

// parseInt validates and converts integer syntax: an optional leading sign
// followed by one or more ASCII digits, nothing else. Uses direct ASCII
// math on the native int width; values that overflow are rejected rather
// than saturated. The magnitude check runs before the sign is applied, so
// the accepted range is the symmetric -MaxInt..MaxInt: MinInt itself is
// rejected.
func parseInt(s string) (int, error) {
	if len(s) == 0 {
		return 0, NewParseError(ErrorTypeInvalidValue, "empty integer")
	}

	negative := false
	start := 0

	switch s[0] {
	case '-':
		negative = true
		start = 1
	case '+':
		start = 1
	}
	if start == len(s) {
		return 0, NewParseError(ErrorTypeInvalidValue, "invalid integer")
	}

	result := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, NewParseError(ErrorTypeInvalidValue, "invalid decimal character")
		}
		digit := int(c - '0')

		// Check for overflow before multiplication (platform-agnostic)
		if result > (math.MaxInt-digit)/10 {
			return 0, NewParseError(ErrorTypeInvalidValue, "integer overflow")
		}
		result = result*10 + digit
	}

	if negative {
		result = -result
	}
	return result, nil
}

// unknownOption builds an unknown long option error with a fuzzy suggestion
func (p *Parser) unknownOption(spelled, name string) error {
	suggestion := ""
	if p.set != nil {
		suggestion = fuzzy.FindBestOption(name, p.set.longNames(), p.maxDistance)
	}
	return &ParseError{
		Type:       ErrorTypeUnknownOption,
		Message:    "unknown option: " + spelled,
		Option:     name,
		Suggestion: suggestion,
	}
}

// unknownShortOption builds an unknown short option error. Single-character
// inputs are below the fuzzy matcher's useful range, so no suggestion.
func (p *Parser) unknownShortOption(short rune) error {
	name := string(short)
	return &ParseError{
		Type:    ErrorTypeUnknownOption,
		Message: "unknown option: -" + name,
		Option:  name,
	}
}

// missingValue builds the error for a non-flag option that reached end of
// input or an option-like next token without receiving a value
func (p *Parser) missingValue(spelled string) error {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: "option requires a value: " + spelled,
		Option:  strings.TrimLeft(spelled, "-"),
	}
}

// Release returns the parser's reusable result to the pool. The parser and
// its last Result must not be used afterwards.
func (p *Parser) Release() {
	if p.result != nil {
		p.result.Release()
		p.result = nil
	}
}
