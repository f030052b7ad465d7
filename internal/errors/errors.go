// Package errors provides standardized error handling for termfolio.
// It defines the error kinds that can occur between the terminal, the event
// source and the configuration layer, plus helpers for wrapping and checking them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Input source error kinds
	InputPollFailed
	InputReadFailed
	SourceClosed
	// Terminal error kinds
	TerminalSetupFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case InputPollFailed:
		return "input_poll_failed"
	case InputReadFailed:
		return "input_read_failed"
	case SourceClosed:
		return "source_closed"
	case TerminalSetupFailed:
		return "terminal_setup_failed"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	default:
		return "unknown"
	}
}

// ErrSourceClosed is returned by the event source once its consumer has
// closed it. It is a normal shutdown signal.
var ErrSourceClosed = &ApplicationError{msg: "event source closed", kind: SourceClosed}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// InputError is raised when the terminal input source fails to poll or read.
type InputError struct {
	ApplicationError
	op string
}

// NewInputError creates a new input error for the given operation ("poll" or "read").
func NewInputError(op string, kind ErrorKind, err error) *InputError {
	return &InputError{
		ApplicationError: ApplicationError{
			msg:  "input source failed",
			err:  err,
			kind: kind,
		},
		op: op,
	}
}

// Error returns the input error message
func (e *InputError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: op=%s: %v", e.msg, e.op, e.err)
	}
	return fmt.Sprintf("%s: op=%s", e.msg, e.op)
}

// Op returns the failing input operation
func (e *InputError) Op() string {
	return e.op
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// TerminalError represents a failure to prepare or restore the terminal.
type TerminalError struct {
	ApplicationError
}

// NewTerminalError creates a new terminal setup error
func NewTerminalError(msg string, err error) *TerminalError {
	return &TerminalError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: TerminalSetupFailed,
		},
	}
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first application error in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return Unknown
	}
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	var termErr *TerminalError
	if errors.As(err, &termErr) {
		return termErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsSourceClosed checks if the error reports a closed event source
func IsSourceClosed(err error) bool {
	return KindOf(err) == SourceClosed
}

// IsInputFailure checks if the error is an input poll or read failure
func IsInputFailure(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsConfigNotFound checks if the error reports a missing configuration file
func IsConfigNotFound(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == ConfigNotFound
	}
	return false
}
