package generator

import (
	"errors"
	"fmt"
)

// Code classifies generation failures.
type Code string

const (
	CodeConfiguration Code = "CONFIGURATION"
	CodeService       Code = "SERVICE"
	CodeEmptyResponse Code = "EMPTY_RESPONSE"
	CodeParse         Code = "PARSE"
)

// Error is returned by every failing Generate call.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generator[%s]: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("generator[%s]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage is the text shown on the error screen.
func (e *Error) UserMessage() string { return e.Message }

const (
	msgMissingCredential = "API key not found. Set ROBO_API_KEY (or GEMINI_API_KEY) or run `robo auth set <key>`."
	msgService           = "An unexpected error occurred while generating the plan."
	msgEmpty             = "No response generated from AI."
	msgParse             = "The AI response could not be read as a business plan. Please try again."
	msgGeneric           = "An unexpected error occurred while generating the plan."
)

func newError(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// IsCode reports whether err is a generator error with the given code.
func IsCode(err error, code Code) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Code == code
}

// UserMessage returns a displayable message for any error.
func UserMessage(err error) string {
	var ge *Error
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.UserMessage()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return msgGeneric
}
