package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-Party API & LLM Specific Errors
var (
	ErrRateLimitExceeded     = errors.New("rate limit exceeded")
	ErrModelOverloaded       = errors.New("model overloaded")
	ErrContextLengthExceeded = errors.New("context length exceeded")
	ErrInvalidAPIKey         = errors.New("invalid API key")
	ErrServiceUnavailable    = errors.New("service unavailable")
	ErrUpstreamFailure       = errors.New("upstream request failed")
)

// Configuration & Environment Errors
var (
	ErrConfigMissing       = errors.New("configuration missing")
	ErrEnvironmentVariable = errors.New("environment variable error")
)

// Storage Errors
var (
	ErrObjectUpload = errors.New("object upload failed")
)

// LLM Service Specific Error Constructors
func NewRateLimitError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimitExceeded,
		Details:    fmt.Sprintf("Rate limit exceeded for %s service", service),
		Field:      "rate_limit",
	}
}

func NewModelOverloadedError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrModelOverloaded,
		Details:    fmt.Sprintf("Model overloaded for %s service", service),
		Field:      "model_capacity",
	}
}

func NewContextLengthError(service string, maxTokens int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrContextLengthExceeded,
		Details:    fmt.Sprintf("Context length exceeded for %s service (max: %d tokens)", service, maxTokens),
		Field:      "context_length",
	}
}

// NewUpstreamFailureError covers a failure of an outbound call whose
// upstream HTTP status is unknown (connection errors and the like). These
// surface as 502.
func NewUpstreamFailureError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUpstreamFailure,
		Details:    fmt.Sprintf("Request to %s service failed", service),
		Cause:      cause,
	}
}

// NewUpstreamStatusError passes a known upstream HTTP status through to the
// caller, so a rate-limited or overloaded upstream is distinguishable from
// a dead one.
func NewUpstreamStatusError(service string, statusCode int, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        ErrUpstreamFailure,
		Details:    fmt.Sprintf("Request to %s service failed with status %d", service, statusCode),
		Cause:      cause,
	}
}

// Configuration & Environment Error Constructors
func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error for %s", configName),
		Cause:      cause,
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvironmentVariable,
		Details:    fmt.Sprintf("Environment variable %s is not set or invalid", varName),
		Field:      varName,
	}
}

// Storage Error Constructors
func NewObjectUploadError(bucket, key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrObjectUpload,
		Details:    fmt.Sprintf("Failed to upload object %s to bucket %s", key, bucket),
		Cause:      cause,
	}
}

// Error Type Checkers
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func IsModelOverloadedError(err error) bool {
	return errors.Is(err, ErrModelOverloaded)
}

func IsContextLengthError(err error) bool {
	return errors.Is(err, ErrContextLengthExceeded)
}

func IsUpstreamFailureError(err error) bool {
	return errors.Is(err, ErrUpstreamFailure)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

func IsEnvironmentVariableError(err error) bool {
	return errors.Is(err, ErrEnvironmentVariable)
}
