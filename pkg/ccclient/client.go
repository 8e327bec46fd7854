// Package ccclient provides the main entry point for creating Clever Cloud API clients
package ccclient

import (
	"fmt"

	"github.com/fivetwenty-io/clevercloud/internal/client"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// New creates a new Clever Cloud API client from the given configuration.
//
// The base URL is resolved from Config.Endpoint when set, otherwise from the
// default endpoint of the configured credentials: the API bridge for bearer
// tokens, the public API for everything else. Construction performs no
// network I/O.
func New(config *clevercloud.Config) (clevercloud.Client, error) {
	if config == nil {
		return nil, clevercloud.ErrConfigRequired
	}

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
func NewWithEndpoint(endpoint string) (clevercloud.Client, error) {
	return New(&clevercloud.Config{
		Endpoint: endpoint,
	})
}

// NewWithOAuth1 creates a new client using an OAuth1 token pair and the
// built-in consumer key. Requests go to the public API endpoint.
func NewWithOAuth1(token, secret string) (clevercloud.Client, error) {
	return New(&clevercloud.Config{
		Credentials: clevercloud.NewOAuth1Credentials(token, secret),
	})
}

// NewWithBasic creates a new client using username/password authentication.
func NewWithBasic(username, password string) (clevercloud.Client, error) {
	return New(&clevercloud.Config{
		Credentials: clevercloud.NewBasicCredentials(username, password),
	})
}

// NewWithBearer creates a new client using a bearer token. Requests go to
// the API bridge endpoint.
func NewWithBearer(token string) (clevercloud.Client, error) {
	return New(&clevercloud.Config{
		Credentials: clevercloud.NewBearerCredentials(token),
	})
}
