package handler

import (
	"errors"
	"fmt"
	"github.com/aws/smithy-go"
	"github.com/chrisdamba/trafficwatch/internal/secrets"
	"github.com/chrisdamba/trafficwatch/internal/traffic"
	"net/http"
)

// Kind is the closed set of failure classes surfaced to callers.
type Kind int

const (
	KindFetch Kind = iota + 1
	KindValidation
	KindCredential
	KindService
)

const (
	MessageSuccess    = "Traffic data processed and alerts sent!"
	MessageFetch      = "Error fetching traffic data"
	MessageValidation = "Error validating traffic data"
	MessageCredential = "Credential error"
	MessageService    = "Downstream-service error"
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindValidation:
		return "validation"
	case KindCredential:
		return "credential"
	case KindService:
		return "service"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Status maps a kind to the status code and message returned to the caller.
func (k Kind) Status() (int, string) {
	switch k {
	case KindFetch:
		return http.StatusInternalServerError, MessageFetch
	case KindValidation:
		return http.StatusInternalServerError, MessageValidation
	case KindCredential:
		return http.StatusInternalServerError, MessageCredential
	case KindService:
		return http.StatusInternalServerError, MessageService
	default:
		return http.StatusInternalServerError, MessageService
	}
}

// Error is a classified pipeline failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes AWS services use for rejected or unusable credentials.
var credentialCodes = map[string]bool{
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"AuthFailure":                 true,
	"AuthorizationError":          true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"IncompleteSignature":         true,
	"InvalidAccessKeyId":          true,
	"InvalidClientTokenId":        true,
	"MissingAuthenticationToken":  true,
	"SignatureDoesNotMatch":       true,
	"UnrecognizedClientException": true,
}

// classifyPlatform sorts a managed-service failure into the credential or
// service bucket.
func classifyPlatform(op string, err error) *Error {
	var fieldErr *secrets.FieldError
	if errors.As(err, &fieldErr) {
		return &Error{Kind: KindCredential, Op: op, Err: err}
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && credentialCodes[apiErr.ErrorCode()] {
		return &Error{Kind: KindCredential, Op: op, Err: err}
	}
	return &Error{Kind: KindService, Op: op, Err: err}
}

func classifyDerivation(op string, err error) *Error {
	var fieldErr *traffic.FieldError
	if errors.As(err, &fieldErr) {
		return &Error{Kind: KindValidation, Op: op, Err: err}
	}
	return &Error{Kind: KindService, Op: op, Err: err}
}

// kindOf extracts the kind of a pipeline error. Anything unclassified is
// reported as a service failure.
func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindService, false
}
