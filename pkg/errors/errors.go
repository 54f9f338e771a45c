// Package errors defines the typed error taxonomy shared by every core
// component: pipes, the Id-Resolver, the Builder, the StrategyRegistry, and
// the Deserializer Facade all return one of these kinds rather than a bare
// fmt.Errorf, so callers can classify failures with errors.As.
package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a failure to decode the raw bytes of a data source
// into an intermediate XML or JSON tree, before any format-specific
// classification has happened.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures struct-level validation issues raised against a
// built Model (see github.com/go-playground/validator/v10 usage in
// internal/model).
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StrategyError indicates issues within strategy registration or dispatch
// that fall outside the six named kinds below (e.g. a second strategy passed
// to Register under an already-claimed Format).
type StrategyError struct {
	Strategy string
	Message  string
	Err      error
}

// NewStrategyError constructs a StrategyError for the given strategy name.
func NewStrategyError(strategy string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StrategyError{Strategy: strategy, Message: message, Err: err}
}

func (e *StrategyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Strategy != "" {
		return fmt.Sprintf("strategy error [%s]: %s", e.Strategy, e.Message)
	}
	return fmt.Sprintf("strategy error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StrategyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnsupportedFormatError is raised by a detection pipe, or by the Dispatcher
// wrapping it, when the observed content is not of the expected dialect. The
// Dispatcher recovers from this kind by trying the next candidate strategy.
type UnsupportedFormatError struct {
	Format string
	Source string
	Reason string
}

// NewUnsupportedFormatError constructs an UnsupportedFormatError.
func NewUnsupportedFormatError(format, source, reason string) error {
	return &UnsupportedFormatError{Format: format, Source: source, Reason: reason}
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("unsupported format %q", e.Format)}
	if e.Source != "" {
		parts = append(parts, fmt.Sprintf("source %q", e.Source))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, ": ")
}

// InvalidFormatError is a structural or encoding violation: well-formed but a
// mandatory attribute is missing, the underlying XML/JSON failed to parse, or
// an enum value could not be mapped while raiseIfMissing was set. It carries
// the offending location for surfacing to the caller.
type InvalidFormatError struct {
	Format   string
	Location string
	Message  string
	Err      error
}

// NewInvalidFormatError constructs an InvalidFormatError.
func NewInvalidFormatError(format, location, message string, err error) error {
	return &InvalidFormatError{Format: format, Location: location, Message: message, Err: err}
}

func (e *InvalidFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Location != "" {
		return fmt.Sprintf("invalid %s format at %s: %s", e.Format, e.Location, e.Message)
	}
	return fmt.Sprintf("invalid %s format: %s", e.Format, e.Message)
}

// Unwrap exposes the underlying error.
func (e *InvalidFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigurationError is raised when a ConfigProxy evaluates against a
// ConfigNamespace that lacks the expected key. This is always a programmer
// error — a pipe misconfigured at construction time — never a data error, and
// is never caught by the Dispatcher's format-probing recovery.
type ConfigurationError struct {
	Path    string
	Message string
}

// NewConfigurationError constructs a ConfigurationError for the given
// dotted/indexed ConfigPath.
func NewConfigurationError(path, message string) error {
	return &ConfigurationError{Path: path, Message: message}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("configuration error at %s: %s", e.Path, e.Message)
}

// AmbiguousFormatError is raised by the Dispatcher when more than one
// registered strategy accepts the same data source. There is no silent
// first-match recovery from this kind.
type AmbiguousFormatError struct {
	Source     string
	Strategies []string
}

// NewAmbiguousFormatError constructs an AmbiguousFormatError.
func NewAmbiguousFormatError(source string, strategies []string) error {
	return &AmbiguousFormatError{Source: source, Strategies: append([]string(nil), strategies...)}
}

func (e *AmbiguousFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("ambiguous format for source %q: matched strategies %s", e.Source, strings.Join(e.Strategies, ", "))
}

// DuplicateIDError indicates two distinct entities registered under the same
// id, either within one document or across documents in the same
// translation.
type DuplicateIDError struct {
	ID string
}

// NewDuplicateIDError constructs a DuplicateIDError.
func NewDuplicateIDError(id string) error {
	return &DuplicateIDError{ID: id}
}

func (e *DuplicateIDError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("duplicate id: %s", e.ID)
}

// UnresolvedReferenceError is surfaced when Id-Resolver.Flush(strict=true)
// completes with pending callbacks still queued against ids that never
// resolved.
type UnresolvedReferenceError struct {
	IDs []string
}

// NewUnresolvedReferenceError constructs an UnresolvedReferenceError.
func NewUnresolvedReferenceError(ids []string) error {
	return &UnresolvedReferenceError{IDs: append([]string(nil), ids...)}
}

func (e *UnresolvedReferenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unresolved references: %s", strings.Join(e.IDs, ", "))
}
