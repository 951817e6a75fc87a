package cmdkit

// ErrorType represents parse error categories. These categories drive
// human-readable messages and exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	// ErrorTypeUnknownOption - a token named an option absent from the set
	ErrorTypeUnknownOption ErrorType = "unknown_option"
	// ErrorTypeMissingValue - a non-flag option reached end of input or an
	// option-like next token without receiving a value
	ErrorTypeMissingValue ErrorType = "missing_value"
	// ErrorTypeInvalidValue - an integer option's value failed integer syntax
	ErrorTypeInvalidValue ErrorType = "invalid_value"
	// ErrorTypeUnknownCommand - the dispatcher found no command by that name
	ErrorTypeUnknownCommand ErrorType = "unknown_command"
)

// ParseError is the single error surface of the engine and the dispatcher.
// Exactly one is produced per failed parse; the parser halts at the first
// error it encounters and never accumulates.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string // option spelling that triggered the error, if any
	Command    string // command name for unknown_command errors
	Suggestion string // optional "did you mean" candidate
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}
