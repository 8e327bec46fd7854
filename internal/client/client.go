package client

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/clevercloud/internal/auth"
	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// Client implements the clevercloud.Client interface.
type Client struct {
	httpClient *http.Client
	logger     clevercloud.Logger

	// Resource clients
	self           clevercloud.SelfClient
	zones          clevercloud.ZonesClient
	addons         clevercloud.AddonsClient
	addonProviders clevercloud.AddonProvidersClient
	environment    clevercloud.EnvironmentClient
	functions      clevercloud.FunctionsClient
	deployments    clevercloud.DeploymentsClient
}

// New creates a new Clever Cloud API client.
func New(config *clevercloud.Config) (*Client, error) {
	if config == nil {
		return nil, clevercloud.ErrConfigRequired
	}

	authorizer, err := auth.FromCredentials(config.Credentials)
	if err != nil {
		return nil, fmt.Errorf("building authorizer: %w", err)
	}

	httpClient := http.NewClient(resolveEndpoint(config), authorizer, httpClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// resolveEndpoint picks the base URL for the client. An explicit
// Config.Endpoint wins; otherwise the endpoint implied by the credential
// scheme is used, which falls back to the public API.
func resolveEndpoint(config *clevercloud.Config) string {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = config.Credentials.DefaultEndpoint()
	}

	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// httpClientOptions builds transport options from config.
func httpClientOptions(config *clevercloud.Config) []http.ClientOption {
	var httpOpts []http.ClientOption

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	return httpOpts
}

// SetCredentials implements clevercloud.Client.SetCredentials. Credentials
// that match no known scheme are ignored and the previous authorizer stays
// in place.
func (c *Client) SetCredentials(credentials *clevercloud.Credentials) {
	authorizer, err := auth.FromCredentials(credentials)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Ignoring unusable credentials", map[string]interface{}{
				"error": err.Error(),
			})
		}

		return
	}

	c.httpClient.SetAuthorizer(authorizer)
}

// Resource client accessors

// Self implements clevercloud.Client.Self.
func (c *Client) Self() clevercloud.SelfClient {
	return c.self
}

// Zones implements clevercloud.Client.Zones.
func (c *Client) Zones() clevercloud.ZonesClient {
	return c.zones
}

// Addons implements clevercloud.Client.Addons.
func (c *Client) Addons() clevercloud.AddonsClient {
	return c.addons
}

// AddonProviders implements clevercloud.Client.AddonProviders.
func (c *Client) AddonProviders() clevercloud.AddonProvidersClient {
	return c.addonProviders
}

// Environment implements clevercloud.Client.Environment.
func (c *Client) Environment() clevercloud.EnvironmentClient {
	return c.environment
}

// Functions implements clevercloud.Client.Functions.
func (c *Client) Functions() clevercloud.FunctionsClient {
	return c.functions
}

// Deployments implements clevercloud.Client.Deployments.
func (c *Client) Deployments() clevercloud.DeploymentsClient {
	return c.deployments
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.self = NewSelfClient(c.httpClient)
	c.zones = NewZonesClient(c.httpClient)
	c.addons = NewAddonsClient(c.httpClient)
	c.addonProviders = NewAddonProvidersClient(c.httpClient)
	c.environment = NewEnvironmentClient(c.httpClient)
	c.functions = NewFunctionsClient(c.httpClient)
	c.deployments = NewDeploymentsClient(c.httpClient)
}
