package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// AddonProvidersClient implements clevercloud.AddonProvidersClient.
type AddonProvidersClient struct {
	httpClient *http.Client
}

// NewAddonProvidersClient creates a new addon providers client.
func NewAddonProvidersClient(httpClient *http.Client) *AddonProvidersClient {
	return &AddonProvidersClient{
		httpClient: httpClient,
	}
}

// List implements clevercloud.AddonProvidersClient.List.
func (c *AddonProvidersClient) List(ctx context.Context) ([]clevercloud.AddonProvider, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/products/addonproviders", nil)
	if err != nil {
		return nil, fmt.Errorf("listing addon providers: %w", err)
	}

	var providers []clevercloud.AddonProvider

	err = http.DecodeJSON(resp, &providers)
	if err != nil {
		return nil, fmt.Errorf("parsing addon providers: %w", err)
	}

	return providers, nil
}

// Get implements clevercloud.AddonProvidersClient.Get.
func (c *AddonProvidersClient) Get(ctx context.Context, providerID clevercloud.AddonProviderID) (*clevercloud.AddonProviderInfo, error) {
	path := "/v4/addon-providers/" + providerID.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting addon provider %q: %w", providerID, err)
	}

	var info clevercloud.AddonProviderInfo

	err = http.DecodeJSON(resp, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing addon provider: %w", err)
	}

	return &info, nil
}

// FindPlan implements clevercloud.AddonProvidersClient.FindPlan. The pattern
// is matched case-insensitively against the slug, name and identifier of
// each plan. A provider without plans yields (nil, nil).
func (c *AddonProvidersClient) FindPlan(ctx context.Context, providerID clevercloud.AddonProviderID, pattern string) (*clevercloud.AddonPlan, error) {
	providers, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	provider := findProvider(providers, providerID)
	if provider == nil {
		return nil, fmt.Errorf("%w: %s", clevercloud.ErrProviderNotFound, providerID)
	}

	if len(provider.Plans) == 0 {
		return nil, nil
	}

	for i := range provider.Plans {
		plan := &provider.Plans[i]
		if strings.EqualFold(plan.Slug, pattern) ||
			strings.EqualFold(plan.Name, pattern) ||
			strings.EqualFold(plan.ID, pattern) {
			return plan, nil
		}
	}

	return nil, fmt.Errorf("%w: no plan of provider %q matches %q, available plans are %s",
		clevercloud.ErrPlanNotFound, providerID, pattern, formatPlanOptions(provider.Plans))
}

// findProvider returns the provider with the given identifier, nil when
// absent.
func findProvider(providers []clevercloud.AddonProvider, providerID clevercloud.AddonProviderID) *clevercloud.AddonProvider {
	for i := range providers {
		if providers[i].ID == providerID.String() {
			return &providers[i]
		}
	}

	return nil
}

// formatPlanOptions formats the plans of a provider for error messages.
func formatPlanOptions(plans []clevercloud.AddonPlan) string {
	options := make([]string, 0, len(plans))

	for _, plan := range plans {
		options = append(options, fmt.Sprintf("'%s' ('%s')", plan.Name, plan.Slug))
	}

	return strings.Join(options, ", ")
}
