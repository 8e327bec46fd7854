// Package constants centralizes defaults shared by the client packages.
package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used when pushing WebAssembly binaries.
	UploadHTTPTimeout = 2 * time.Minute
)

// Deployment polling.
const (
	// DefaultDeploymentPollInterval is the delay between two status checks
	// while waiting for a deployment to settle.
	DefaultDeploymentPollInterval = 5 * time.Second

	// DefaultDeploymentPollTimeout caps the overall wait for a deployment to
	// reach a terminal status.
	DefaultDeploymentPollTimeout = 5 * time.Minute
)

// Client identification.
const (
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "clevercloud-go/1.0"
)
