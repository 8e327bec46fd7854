package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// EnvironmentClient implements clevercloud.EnvironmentClient for
// config-provider addons.
//
// The API exposes no partial updates, so every mutation reads the full
// variable set, applies the change and writes the full set back. Concurrent
// writers race on the whole set and the last write wins.
type EnvironmentClient struct {
	httpClient *http.Client
}

// NewEnvironmentClient creates a new config-provider environment client.
func NewEnvironmentClient(httpClient *http.Client) *EnvironmentClient {
	return &EnvironmentClient{
		httpClient: httpClient,
	}
}

func environmentPath(addonID string) string {
	return "/v4/addon-providers/config-provider/addons/" + addonID + "/env"
}

// Get implements clevercloud.EnvironmentClient.Get.
func (c *EnvironmentClient) Get(ctx context.Context, addonID string) ([]clevercloud.Variable, error) {
	resp, err := c.httpClient.Get(ctx, environmentPath(addonID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment of config provider %q: %w", addonID, err)
	}

	var variables []clevercloud.Variable

	err = http.DecodeJSON(resp, &variables)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return variables, nil
}

// Put implements clevercloud.EnvironmentClient.Put. The given variables
// replace the whole environment.
func (c *EnvironmentClient) Put(ctx context.Context, addonID string, variables []clevercloud.Variable) ([]clevercloud.Variable, error) {
	resp, err := c.httpClient.Put(ctx, environmentPath(addonID), variables)
	if err != nil {
		return nil, fmt.Errorf("updating environment of config provider %q: %w", addonID, err)
	}

	var updated []clevercloud.Variable

	err = http.DecodeJSON(resp, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return updated, nil
}

// Insert implements clevercloud.EnvironmentClient.Insert.
func (c *EnvironmentClient) Insert(ctx context.Context, addonID, name, value string) ([]clevercloud.Variable, error) {
	return c.BulkInsert(ctx, addonID, []clevercloud.Variable{{Name: name, Value: value}})
}

// BulkInsert implements clevercloud.EnvironmentClient.BulkInsert.
func (c *EnvironmentClient) BulkInsert(ctx context.Context, addonID string, variables []clevercloud.Variable) ([]clevercloud.Variable, error) {
	current, err := c.Get(ctx, addonID)
	if err != nil {
		return nil, err
	}

	environment := clevercloud.EnvironmentToMap(current)
	for _, variable := range variables {
		environment[variable.Name] = variable.Value
	}

	return c.Put(ctx, addonID, clevercloud.EnvironmentFromMap(environment))
}

// Remove implements clevercloud.EnvironmentClient.Remove.
func (c *EnvironmentClient) Remove(ctx context.Context, addonID, name string) ([]clevercloud.Variable, error) {
	return c.BulkRemove(ctx, addonID, []string{name})
}

// BulkRemove implements clevercloud.EnvironmentClient.BulkRemove. Names
// absent from the environment are ignored.
func (c *EnvironmentClient) BulkRemove(ctx context.Context, addonID string, names []string) ([]clevercloud.Variable, error) {
	current, err := c.Get(ctx, addonID)
	if err != nil {
		return nil, err
	}

	environment := clevercloud.EnvironmentToMap(current)
	for _, name := range names {
		delete(environment, name)
	}

	return c.Put(ctx, addonID, clevercloud.EnvironmentFromMap(environment))
}
