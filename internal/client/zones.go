package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// ZonesClient implements clevercloud.ZonesClient.
type ZonesClient struct {
	httpClient *http.Client
}

// NewZonesClient creates a new zones client.
func NewZonesClient(httpClient *http.Client) *ZonesClient {
	return &ZonesClient{
		httpClient: httpClient,
	}
}

// List implements clevercloud.ZonesClient.List.
func (c *ZonesClient) List(ctx context.Context) ([]clevercloud.Zone, error) {
	resp, err := c.httpClient.Get(ctx, "/v4/products/zones", nil)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	var zones []clevercloud.Zone

	err = http.DecodeJSON(resp, &zones)
	if err != nil {
		return nil, fmt.Errorf("parsing zones: %w", err)
	}

	return zones, nil
}

// Applications implements clevercloud.ZonesClient.Applications. It keeps the
// zones where applications and addons can be deployed.
func (c *ZonesClient) Applications(ctx context.Context) ([]clevercloud.Zone, error) {
	zones, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]clevercloud.Zone, 0, len(zones))

	for _, zone := range zones {
		if zone.HasTag(clevercloud.ZoneTagApplications) {
			filtered = append(filtered, zone)
		}
	}

	return filtered, nil
}

// HDS implements clevercloud.ZonesClient.HDS. It keeps the application zones
// certified for health data hosting.
func (c *ZonesClient) HDS(ctx context.Context) ([]clevercloud.Zone, error) {
	zones, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]clevercloud.Zone, 0, len(zones))

	for _, zone := range zones {
		if zone.HasTag(clevercloud.ZoneTagApplications) && zone.HasTag(clevercloud.ZoneTagHDS) {
			filtered = append(filtered, zone)
		}
	}

	return filtered, nil
}
