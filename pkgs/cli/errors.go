package cli

import "fmt"

// Flag access error codes, the closed set a typed accessor can return
const (
	ErrFlagUndefined = "FLAG_UNDEFINED"        // name/alias not declared anywhere in scope
	ErrFlagType      = "FLAG_TYPE_ERROR"       // declared type differs from the accessor's
	ErrFlagNotFound  = "FLAG_NOT_FOUND"        // declared but no occurrence this invocation
	ErrFlagArgument  = "FLAG_ARGUMENT_ERROR"   // occurrence captured without a value token
	ErrFlagValueType = "FLAG_VALUE_TYPE_ERROR" // value token fails to parse as the declared type
)

// Configuration error codes, reported once when an App is finalized
const (
	ErrConfigDuplicateCommand = "CONFIG_DUPLICATE_COMMAND"
	ErrConfigDuplicateFlag    = "CONFIG_DUPLICATE_FLAG"
	ErrConfigEmptyName        = "CONFIG_EMPTY_NAME"
)

// FlagError is the typed failure returned by Context's flag accessors. The
// core never escalates these itself; the action decides to ignore, default,
// log, or abort.
type FlagError struct {
	Type  string
	Flag  string
	Cause error
}

// Error implements the error interface
func (e *FlagError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: flag %q (caused by: %v)", e.Type, e.Flag, e.Cause)
	}
	return fmt.Sprintf("%s: flag %q", e.Type, e.Flag)
}

// Unwrap allows error unwrapping
func (e *FlagError) Unwrap() error {
	return e.Cause
}

// Is matches on error code, and on flag name when the target names one, so
// errors.Is(err, &FlagError{Type: ErrFlagNotFound}) works for any flag.
func (e *FlagError) Is(target error) bool {
	t, ok := target.(*FlagError)
	if !ok {
		return false
	}
	return t.Type == e.Type && (t.Flag == "" || t.Flag == e.Flag)
}

func newFlagError(errorType, name string) *FlagError {
	return &FlagError{Type: errorType, Flag: name}
}

func newValueTypeError(name string, cause error) *FlagError {
	return &FlagError{Type: ErrFlagValueType, Flag: name, Cause: cause}
}

// ConfigError reports a defect in the descriptor tree: duplicate sibling
// names or aliases, duplicate flag names at one command level, empty names.
// Detected at finalization, never during resolution.
type ConfigError struct {
	Type    string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newConfigError(errorType, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Type: errorType, Message: fmt.Sprintf(format, args...)}
}

// IsErrorType checks if an error is a framework error with the given code
func IsErrorType(err error, errorType string) bool {
	switch e := err.(type) {
	case *FlagError:
		return e.Type == errorType
	case *ConfigError:
		return e.Type == errorType
	}
	return false
}
