package domain

import (
	"errors"
	"fmt"
)

// The core reports failures through three typed errors, matching the
// taxonomy of outcomes a caller must tell apart: something was not found,
// the upstream provider failed, or the input was invalid. Transport layers
// map them to wire error codes; the core itself never swallows one.

// NotFoundError reports an unknown or expired entity. It is a non-fatal,
// structured outcome, not a crash.
type NotFoundError struct {
	Kind string // "session", "place", "location", "route"
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// UpstreamError reports a hard failure from the place provider (network,
// quota, malformed response). Status carries the provider's status code
// verbatim so it is never lost in translation.
type UpstreamError struct {
	Status  string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("upstream error (%s): %s", e.Status, e.Message)
	}
	return "upstream error: " + e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ValidationError rejects bad input before any cache or session
// interaction, carrying the offending field name and value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigError reports missing or invalid configuration at construction
// time rather than on first use.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Message)
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUpstream reports whether err is an UpstreamError anywhere in its chain.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
