package cmdkit

import "errors"

// ExitError is a sentinel used to request a specific exit code from inside
// actions.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps errors to process exit codes. Every parse error
// category defaults to the misusage code; actions can override per category
// or request a code directly with ExitError.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	m.codesByType[ErrorTypeUnknownOption] = m.defaults.MisusageError
	m.codesByType[ErrorTypeUnknownCommand] = m.defaults.MisusageError
	m.codesByType[ErrorTypeMissingValue] = m.defaults.MisusageError
	m.codesByType[ErrorTypeInvalidValue] = m.defaults.MisusageError
	return m
}

// Define overrides the exit code used for a parse error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the manager's default codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// resolve converts an error to an exit code. Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping (Define)
//  3. Default codes
func (e *ExitCodeManager) resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.codesByType[parseErr.Type]; ok {
			return code
		}
		return e.defaults.MisusageError
	}

	return e.defaults.GeneralError
}
