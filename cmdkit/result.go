package cmdkit

import "github.com/dzonerzy/go-cmdkit/internal/pool"

// resultPool recycles Result objects across parser lifetimes so repeated
// dispatches stay off the allocator.
var resultPool = pool.NewPoolWithReset(
	func() *Result {
		return &Result{
			provided:    make(map[string]bool, 8),
			strings:     make(map[string]string, 8),
			ints:        make(map[string]int, 8),
			positionals: make([]string, 0, 16),
		}
	},
	func(r *Result) {
		r.clear()
		r.set = nil
	},
)

// Result is the outcome of one successful parse pass: the provided set and
// typed values keyed by option identity, plus positional arguments in
// encounter order. The parser owns one reusable Result; it is valid until
// the next Parse call on the same Parser, or until Release.
//
// Positional strings are the original argument strings, never copied or
// interpreted; storage grows as needed (no fixed bound, no truncation).
type Result struct {
	set         *OptionSet
	provided    map[string]bool
	strings     map[string]string
	ints        map[string]int
	positionals []string
}

// clear wipes all per-parse state without reallocating
func (r *Result) clear() {
	for k := range r.provided {
		delete(r.provided, k)
	}
	for k := range r.strings {
		delete(r.strings, k)
	}
	for k := range r.ints {
		delete(r.ints, k)
	}
	r.positionals = r.positionals[:0]
}

// key resolves either spelling of an option to its canonical result key
func (r *Result) key(name string) (string, bool) {
	if r.set == nil {
		return "", false
	}
	opt := r.set.resolve(name)
	if opt == nil {
		return "", false
	}
	return opt.Name(), true
}

// Provided reports whether the option was present in the argument vector.
// Accepts either spelling of the option.
func (r *Result) Provided(name string) bool {
	k, ok := r.key(name)
	return ok && r.provided[k]
}

// GetString retrieves a string option value (safe access)
func (r *Result) GetString(name string) (string, bool) {
	k, ok := r.key(name)
	if !ok {
		return "", false
	}
	value, exists := r.strings[k]
	return value, exists
}

// MustGetString retrieves a string option value with default fallback
func (r *Result) MustGetString(name, defaultValue string) string {
	if value, ok := r.GetString(name); ok {
		return value
	}
	return defaultValue
}

// GetInt retrieves an integer option value (safe access)
func (r *Result) GetInt(name string) (int, bool) {
	k, ok := r.key(name)
	if !ok {
		return 0, false
	}
	value, exists := r.ints[k]
	return value, exists
}

// MustGetInt retrieves an integer option value with default fallback
func (r *Result) MustGetInt(name string, defaultValue int) int {
	if value, ok := r.GetInt(name); ok {
		return value
	}
	return defaultValue
}

// Positionals returns the positional arguments in encounter order. The
// returned slice is the result's backing storage; treat it as read-only.
func (r *Result) Positionals() []string {
	return r.positionals
}

// NumPositionals returns the number of positional arguments
func (r *Result) NumPositionals() int {
	return len(r.positionals)
}

// Positional returns the positional argument at index i, or "" out of range
func (r *Result) Positional(i int) string {
	if i >= 0 && i < len(r.positionals) {
		return r.positionals[i]
	}
	return ""
}

// Release returns the result to the pool. The owning Parser must not be
// used afterwards.
func (r *Result) Release() {
	resultPool.Put(r)
}
