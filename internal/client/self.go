package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// SelfClient implements clevercloud.SelfClient.
type SelfClient struct {
	httpClient *http.Client
}

// NewSelfClient creates a new self client.
func NewSelfClient(httpClient *http.Client) *SelfClient {
	return &SelfClient{
		httpClient: httpClient,
	}
}

// Get implements clevercloud.SelfClient.Get.
func (c *SelfClient) Get(ctx context.Context) (*clevercloud.Myself, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/self", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var myself clevercloud.Myself

	err = http.DecodeJSON(resp, &myself)
	if err != nil {
		return nil, fmt.Errorf("parsing current user: %w", err)
	}

	return &myself, nil
}
