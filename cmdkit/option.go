package cmdkit

import "github.com/dzonerzy/go-cmdkit/internal/intern"

// OptKind represents the value kind of an option
type OptKind uint8

const (
	// KindFlag is a boolean option carrying no value; true when present
	KindFlag OptKind = iota
	// KindString is an option whose value is stored verbatim
	KindString
	// KindInt is an option whose value must satisfy integer syntax
	KindInt
)

// String returns the human-readable name of the kind
func (k OptKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Option declares one command-line option. Identity is the short/long name
// pair; at least one of the two spellings must be set by the caller.
type Option struct {
	Short rune   // single-character spelling for -x form; 0 means none
	Long  string // multi-character spelling for --name form; "" means none
	Kind  OptKind
	Help  string // informational only, rendered by help output
}

// Name returns the canonical result key for the option: the long spelling
// when present, otherwise the one-character short spelling.
func (o *Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return intern.ShortName(o.Short)
}

// RequiresValue returns true if the option kind consumes a value
func (o *Option) RequiresValue() bool {
	return o.Kind != KindFlag
}

// OptionSet is an ordered, caller-owned collection of option declarations.
// Declaration order is preserved for help output. Lookup maps give O(1)
// resolution by either spelling; on duplicate names the first declaration
// wins (the set does not police uniqueness - that is a caller bug).
//
// An OptionSet is immutable during a parse pass and safe to reuse across
// repeated Parse calls. It is not safe for concurrent mutation.
type OptionSet struct {
	opts  []*Option
	long  map[string]*Option
	short map[rune]*Option
}

// NewOptionSet creates an empty option set
func NewOptionSet() *OptionSet {
	return &OptionSet{
		opts:  make([]*Option, 0, 8),
		long:  make(map[string]*Option, 8),
		short: make(map[rune]*Option, 8),
	}
}

// Add appends a declaration to the set and returns the set for chaining
func (s *OptionSet) Add(opt Option) *OptionSet {
	o := &opt
	s.opts = append(s.opts, o)
	if o.Long != "" {
		if _, exists := s.long[o.Long]; !exists {
			s.long[o.Long] = o
		}
	}
	if o.Short != 0 {
		if _, exists := s.short[o.Short]; !exists {
			s.short[o.Short] = o
		}
	}
	return s
}

// Flag declares a boolean option
func (s *OptionSet) Flag(short rune, long, help string) *OptionSet {
	return s.Add(Option{Short: short, Long: long, Kind: KindFlag, Help: help})
}

// String declares a string-valued option
func (s *OptionSet) String(short rune, long, help string) *OptionSet {
	return s.Add(Option{Short: short, Long: long, Kind: KindString, Help: help})
}

// Int declares an integer-valued option
func (s *OptionSet) Int(short rune, long, help string) *OptionSet {
	return s.Add(Option{Short: short, Long: long, Kind: KindInt, Help: help})
}

// Len returns the number of declarations in the set
func (s *OptionSet) Len() int {
	return len(s.opts)
}

// Options returns the declarations in declaration order. The returned slice
// is the set's backing storage and must be treated as read-only.
func (s *OptionSet) Options() []*Option {
	return s.opts
}

// findLong resolves an option by its exact long spelling
func (s *OptionSet) findLong(name string) *Option {
	if s == nil || s.long == nil {
		return nil
	}
	return s.long[name]
}

// findShort resolves an option by its short spelling
func (s *OptionSet) findShort(short rune) *Option {
	if s == nil || s.short == nil {
		return nil
	}
	return s.short[short]
}

// resolve maps either spelling of an option to its declaration. Used by
// Result accessors so callers can ask for values under -x or --name.
func (s *OptionSet) resolve(name string) *Option {
	if opt := s.findLong(name); opt != nil {
		return opt
	}
	if len(name) > 0 {
		runes := []rune(name)
		if len(runes) == 1 {
			return s.findShort(runes[0])
		}
	}
	return nil
}

// longNames returns all long spellings in the set. Allocates; only used on
// error paths for suggestion candidates.
func (s *OptionSet) longNames() []string {
	names := make([]string, 0, len(s.opts))
	for _, o := range s.opts {
		if o.Long != "" {
			names = append(names, o.Long)
		}
	}
	return names
}
