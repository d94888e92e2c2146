package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCategory groups errors by the part of the app that produced them
type ErrorCategory string

const (
	ErrorLoad   ErrorCategory = "load"
	ErrorConfig ErrorCategory = "config"
)

// Codes used by the catalog loader. All of them are LoadFailures.
const (
	CodeReadFailed    = "READ_FAILED"
	CodeFetchFailed   = "FETCH_FAILED"
	CodeHTTPStatus    = "HTTP_STATUS"
	CodeMalformedJSON = "MALFORMED_JSON"
	CodeMalformedYAML = "MALFORMED_YAML"
	CodeNotAnArray    = "NOT_AN_ARRAY"
)

// Codes used by the config layer
const (
	CodeConfigRead  = "CONFIG_READ_FAILED"
	CodeConfigParse = "CONFIG_PARSE_FAILED"
	CodeDotEnv      = "DOTENV_FAILED"
)

// LumaError is a structured error carrying a category, a stable code and
// optional context for the log line.
type LumaError struct {
	Category  ErrorCategory          `json:"category"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Cause     error                  `json:"cause,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *LumaError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap implements the error unwrapping interface
func (e *LumaError) Unwrap() error {
	return e.Cause
}

// Is matches on category and code so callers can compare against sentinels
// built with New.
func (e *LumaError) Is(target error) bool {
	if t, ok := target.(*LumaError); ok {
		return e.Category == t.Category && (t.Code == "" || e.Code == t.Code)
	}
	return false
}

// WithContext adds contextual information to the error
func (e *LumaError) WithContext(key string, value interface{}) *LumaError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails sets additional detail text
func (e *LumaError) WithDetails(details string) *LumaError {
	e.Details = details
	return e
}

// WithCause sets the underlying cause of this error
func (e *LumaError) WithCause(cause error) *LumaError {
	e.Cause = cause
	return e
}

// LogFields flattens the error into key/value pairs for charmbracelet/log.
func (e *LumaError) LogFields() []interface{} {
	fields := []interface{}{"category", string(e.Category), "code", e.Code}
	for k, v := range e.Context {
		fields = append(fields, k, v)
	}
	if e.Cause != nil {
		fields = append(fields, "cause", e.Cause.Error())
	}
	return fields
}

// New creates a new LumaError with the specified parameters
func New(category ErrorCategory, code, message string) *LumaError {
	return &LumaError{
		Category:  category,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap creates a new LumaError that wraps an existing error
func Wrap(err error, category ErrorCategory, code, message string) *LumaError {
	return New(category, code, message).WithCause(err)
}

// LoadFailure builds the single runtime error kind of the data source.
func LoadFailure(code, message string, cause error) *LumaError {
	return Wrap(cause, ErrorLoad, code, message)
}

// ConfigError creates a configuration-related error
func ConfigError(code, message string) *LumaError {
	return New(ErrorConfig, code, message)
}

// ErrLoadFailure matches any LoadFailure via errors.Is.
var ErrLoadFailure = &LumaError{Category: ErrorLoad}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	var e *LumaError
	if stderrors.As(err, &e) {
		return e.Category == category
	}
	return false
}
