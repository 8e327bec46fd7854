package clevercloud

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the API. The transport never
// interprets status semantics; callers branch on StatusCode or use the Is*
// helpers below.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body, kept for diagnostics.
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrEncodeRequest      = errors.New("failed to encode request payload")
	ErrDecodeResponse     = errors.New("failed to decode response payload")
	ErrUnknownCredentials = errors.New("credentials do not match any known scheme")
	ErrInvalidPlatform    = errors.New("invalid platform, available values are 'rust', 'javascript' ('js'), 'tiny_go' ('go') and 'assemblyscript'")
	ErrInvalidStatus      = errors.New("invalid status, available values are 'waiting_for_upload', 'packaging', 'deploying', 'ready' and 'error'")
	ErrInvalidProviderID  = errors.New("invalid addon provider identifier, available options are 'postgresql-addon', 'redis-addon', 'mysql-addon', 'mongodb-addon', 'addon-pulsar', 'config-provider' and 'es-addon'")
	ErrProviderNotFound   = errors.New("addon provider not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrNoReadyDeployment  = errors.New("no ready deployment found")
	ErrDeploymentFailed   = errors.New("deployment failed")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}
