// Package intern provides canonical strings for option and command names.
// Used by the parser so steady-state result keys never allocate.
package intern

import "sync"

// Pre-allocated single character strings for zero-allocation short options
// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var singleCharStrings = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// ShortName returns the canonical one-character string for a short option
// spelling. ASCII letters and digits hit a pre-allocated table; anything
// else goes through the interner (rare case).
func ShortName(r rune) string {
	if r >= 'a' && r <= 'z' {
		return singleCharStrings[r-'a']
	}
	if r >= 'A' && r <= 'Z' {
		return singleCharStrings[26+r-'A']
	}
	if r >= '0' && r <= '9' {
		return singleCharStrings[52+r-'0']
	}
	return Intern(string(r))
}

// Interner provides thread-safe string interning
type Interner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewInterner creates an interner with optional pre-allocated capacity
func NewInterner(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s, storing it on first sight.
// Thread-safe; read lock on the common hit path.
func (in *Interner) Intern(s string) string {
	in.mutex.RLock()
	if canonical, exists := in.strings[s]; exists {
		in.mutex.RUnlock()
		return canonical
	}
	in.mutex.RUnlock()

	in.mutex.Lock()
	defer in.mutex.Unlock()

	// Double-check after acquiring write lock
	if canonical, exists := in.strings[s]; exists {
		return canonical
	}

	in.strings[s] = s
	return s
}

// Len returns the number of interned strings for monitoring.
func (in *Interner) Len() int {
	in.mutex.RLock()
	defer in.mutex.RUnlock()
	return len(in.strings)
}

// Clear removes all interned strings (useful for testing)
func (in *Interner) Clear() {
	in.mutex.Lock()
	defer in.mutex.Unlock()
	for k := range in.strings {
		delete(in.strings, k)
	}
}

// global backs ShortName's slow path and the package-level Intern.
var global = NewInterner(64)

// Intern interns a string using the process-wide interner
func Intern(s string) string {
	return global.Intern(s)
}
