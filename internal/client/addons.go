package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// AddonsClient implements clevercloud.AddonsClient.
type AddonsClient struct {
	httpClient *http.Client
}

// NewAddonsClient creates a new addons client.
func NewAddonsClient(httpClient *http.Client) *AddonsClient {
	return &AddonsClient{
		httpClient: httpClient,
	}
}

func addonsPath(organisationID string) string {
	return "/v2/organisations/" + organisationID + "/addons"
}

// List implements clevercloud.AddonsClient.List.
func (c *AddonsClient) List(ctx context.Context, organisationID string) ([]clevercloud.Addon, error) {
	resp, err := c.httpClient.Get(ctx, addonsPath(organisationID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing addons of organisation %q: %w", organisationID, err)
	}

	var addons []clevercloud.Addon

	err = http.DecodeJSON(resp, &addons)
	if err != nil {
		return nil, fmt.Errorf("parsing addons: %w", err)
	}

	return addons, nil
}

// Get implements clevercloud.AddonsClient.Get.
func (c *AddonsClient) Get(ctx context.Context, organisationID, addonID string) (*clevercloud.Addon, error) {
	path := addonsPath(organisationID) + "/" + addonID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting addon %q of organisation %q: %w", addonID, organisationID, err)
	}

	var addon clevercloud.Addon

	err = http.DecodeJSON(resp, &addon)
	if err != nil {
		return nil, fmt.Errorf("parsing addon: %w", err)
	}

	return &addon, nil
}

// Create implements clevercloud.AddonsClient.Create.
func (c *AddonsClient) Create(ctx context.Context, organisationID string, request *clevercloud.AddonCreateRequest) (*clevercloud.Addon, error) {
	resp, err := c.httpClient.Post(ctx, addonsPath(organisationID), request)
	if err != nil {
		return nil, fmt.Errorf("creating addon in organisation %q: %w", organisationID, err)
	}

	var addon clevercloud.Addon

	err = http.DecodeJSON(resp, &addon)
	if err != nil {
		return nil, fmt.Errorf("parsing addon: %w", err)
	}

	return &addon, nil
}

// Delete implements clevercloud.AddonsClient.Delete.
func (c *AddonsClient) Delete(ctx context.Context, organisationID, addonID string) error {
	path := addonsPath(organisationID) + "/" + addonID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting addon %q of organisation %q: %w", addonID, organisationID, err)
	}

	return nil
}

// Environment implements clevercloud.AddonsClient.Environment. The API
// returns the variables as an array; duplicate names are folded with the
// later entry winning.
func (c *AddonsClient) Environment(ctx context.Context, organisationID, addonID string) (map[string]string, error) {
	path := addonsPath(organisationID) + "/" + addonID + "/env"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment of addon %q: %w", addonID, err)
	}

	var variables []clevercloud.Variable

	err = http.DecodeJSON(resp, &variables)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return clevercloud.EnvironmentToMap(variables), nil
}
