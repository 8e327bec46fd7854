package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// FunctionsClient implements clevercloud.FunctionsClient.
type FunctionsClient struct {
	httpClient *http.Client
}

// NewFunctionsClient creates a new functions client.
func NewFunctionsClient(httpClient *http.Client) *FunctionsClient {
	return &FunctionsClient{
		httpClient: httpClient,
	}
}

// The functions routes spell "organizations" with a z while the deployments
// routes below them use the "organisations" spelling.
func functionsPath(organisationID string) string {
	return "/v4/functions/organizations/" + organisationID + "/functions"
}

// List implements clevercloud.FunctionsClient.List.
func (c *FunctionsClient) List(ctx context.Context, organisationID string) ([]clevercloud.Function, error) {
	resp, err := c.httpClient.Get(ctx, functionsPath(organisationID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing functions of organisation %q: %w", organisationID, err)
	}

	var functions []clevercloud.Function

	err = http.DecodeJSON(resp, &functions)
	if err != nil {
		return nil, fmt.Errorf("parsing functions: %w", err)
	}

	return functions, nil
}

// Create implements clevercloud.FunctionsClient.Create.
func (c *FunctionsClient) Create(ctx context.Context, organisationID string, opts *clevercloud.FunctionOpts) (*clevercloud.Function, error) {
	resp, err := c.httpClient.Post(ctx, functionsPath(organisationID), opts)
	if err != nil {
		return nil, fmt.Errorf("creating function in organisation %q: %w", organisationID, err)
	}

	var function clevercloud.Function

	err = http.DecodeJSON(resp, &function)
	if err != nil {
		return nil, fmt.Errorf("parsing function: %w", err)
	}

	return &function, nil
}

// Get implements clevercloud.FunctionsClient.Get.
func (c *FunctionsClient) Get(ctx context.Context, organisationID, functionID string) (*clevercloud.Function, error) {
	path := functionsPath(organisationID) + "/" + functionID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting function %q of organisation %q: %w", functionID, organisationID, err)
	}

	var function clevercloud.Function

	err = http.DecodeJSON(resp, &function)
	if err != nil {
		return nil, fmt.Errorf("parsing function: %w", err)
	}

	return &function, nil
}

// Update implements clevercloud.FunctionsClient.Update.
func (c *FunctionsClient) Update(ctx context.Context, organisationID, functionID string, opts *clevercloud.FunctionOpts) (*clevercloud.Function, error) {
	path := functionsPath(organisationID) + "/" + functionID

	resp, err := c.httpClient.Put(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("updating function %q of organisation %q: %w", functionID, organisationID, err)
	}

	var function clevercloud.Function

	err = http.DecodeJSON(resp, &function)
	if err != nil {
		return nil, fmt.Errorf("parsing function: %w", err)
	}

	return &function, nil
}

// Delete implements clevercloud.FunctionsClient.Delete.
func (c *FunctionsClient) Delete(ctx context.Context, organisationID, functionID string) error {
	path := functionsPath(organisationID) + "/" + functionID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting function %q of organisation %q: %w", functionID, organisationID, err)
	}

	return nil
}

// Execute implements clevercloud.FunctionsClient.Execute. The function URL
// is public, so the request carries no authentication. The body is decoded
// whatever the status code; failed runs report their outcome in the payload.
func (c *FunctionsClient) Execute(ctx context.Context, url string) (*clevercloud.ExecutionResult, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:          nethttp.MethodGet,
		Path:            url,
		Unauthenticated: true,
	})
	if err != nil && resp == nil {
		return nil, fmt.Errorf("executing function at %q: %w", url, err)
	}

	var result clevercloud.ExecutionResult

	err = http.DecodeJSON(resp, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing execution result: %w", err)
	}

	return &result, nil
}
