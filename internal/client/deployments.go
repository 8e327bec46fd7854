package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/fivetwenty-io/clevercloud/internal/constants"
	"github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// DeploymentsClient implements clevercloud.DeploymentsClient.
type DeploymentsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewDeploymentsClient creates a new deployments client.
func NewDeploymentsClient(httpClient *http.Client) *DeploymentsClient {
	return &DeploymentsClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultDeploymentPollInterval,
		pollTimeout:  constants.DefaultDeploymentPollTimeout,
	}
}

func deploymentsPath(organisationID, functionID string) string {
	return "/v4/functions/organisations/" + organisationID + "/functions/" + functionID + "/deployments"
}

// List implements clevercloud.DeploymentsClient.List.
func (c *DeploymentsClient) List(ctx context.Context, organisationID, functionID string) ([]clevercloud.Deployment, error) {
	resp, err := c.httpClient.Get(ctx, deploymentsPath(organisationID, functionID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing deployments of function %q: %w", functionID, err)
	}

	var deployments []clevercloud.Deployment

	err = http.DecodeJSON(resp, &deployments)
	if err != nil {
		return nil, fmt.Errorf("parsing deployments: %w", err)
	}

	return deployments, nil
}

// Create implements clevercloud.DeploymentsClient.Create. The response
// carries the presigned URL the WebAssembly code must be uploaded to.
func (c *DeploymentsClient) Create(ctx context.Context, organisationID, functionID string, opts *clevercloud.DeploymentOpts) (*clevercloud.DeploymentCreation, error) {
	resp, err := c.httpClient.Post(ctx, deploymentsPath(organisationID, functionID), opts)
	if err != nil {
		return nil, fmt.Errorf("creating deployment of function %q: %w", functionID, err)
	}

	var creation clevercloud.DeploymentCreation

	err = http.DecodeJSON(resp, &creation)
	if err != nil {
		return nil, fmt.Errorf("parsing deployment: %w", err)
	}

	return &creation, nil
}

// Get implements clevercloud.DeploymentsClient.Get.
func (c *DeploymentsClient) Get(ctx context.Context, organisationID, functionID, deploymentID string) (*clevercloud.Deployment, error) {
	path := deploymentsPath(organisationID, functionID) + "/" + deploymentID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting deployment %q of function %q: %w", deploymentID, functionID, err)
	}

	var deployment clevercloud.Deployment

	err = http.DecodeJSON(resp, &deployment)
	if err != nil {
		return nil, fmt.Errorf("parsing deployment: %w", err)
	}

	return &deployment, nil
}

// Delete implements clevercloud.DeploymentsClient.Delete.
func (c *DeploymentsClient) Delete(ctx context.Context, organisationID, functionID, deploymentID string) error {
	path := deploymentsPath(organisationID, functionID) + "/" + deploymentID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting deployment %q of function %q: %w", deploymentID, functionID, err)
	}

	return nil
}

// Upload implements clevercloud.DeploymentsClient.Upload. The presigned URL
// already authenticates the request, so no signature is attached.
func (c *DeploymentsClient) Upload(ctx context.Context, uploadURL string, code []byte) error {
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:          nethttp.MethodPut,
		Path:            uploadURL,
		RawBody:         code,
		ContentType:     clevercloud.MimeApplicationWASM,
		Unauthenticated: true,
	})
	if err != nil {
		return fmt.Errorf("uploading function code: %w", err)
	}

	return nil
}

// Trigger implements clevercloud.DeploymentsClient.Trigger.
func (c *DeploymentsClient) Trigger(ctx context.Context, organisationID, functionID, deploymentID string) error {
	path := deploymentsPath(organisationID, functionID) + "/" + deploymentID + "/trigger"

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("triggering deployment %q of function %q: %w", deploymentID, functionID, err)
	}

	return nil
}

// Executable implements clevercloud.DeploymentsClient.Executable.
func (c *DeploymentsClient) Executable(ctx context.Context, organisationID, functionID string) (*clevercloud.Deployment, error) {
	deployments, err := c.List(ctx, organisationID, functionID)
	if err != nil {
		return nil, err
	}

	deployment, err := clevercloud.ExecutableDeployment(deployments)
	if err != nil {
		return nil, fmt.Errorf("selecting executable deployment of function %q: %w", functionID, err)
	}

	return deployment, nil
}

// Deploy implements clevercloud.DeploymentsClient.Deploy. It chains the
// whole workflow: create the deployment, upload the code to the presigned
// URL, trigger it and return the refreshed deployment.
func (c *DeploymentsClient) Deploy(ctx context.Context, organisationID, functionID string, opts *clevercloud.DeploymentOpts, code []byte) (*clevercloud.Deployment, error) {
	creation, err := c.Create(ctx, organisationID, functionID, opts)
	if err != nil {
		return nil, err
	}

	err = c.Upload(ctx, creation.UploadURL, code)
	if err != nil {
		return nil, fmt.Errorf("deploying function %q: %w", functionID, err)
	}

	err = c.Trigger(ctx, organisationID, functionID, creation.ID)
	if err != nil {
		return nil, fmt.Errorf("deploying function %q: %w", functionID, err)
	}

	return c.Get(ctx, organisationID, functionID, creation.ID)
}

// WaitReady implements clevercloud.DeploymentsClient.WaitReady.
// It polls the deployment until it reaches a terminal status (READY or
// ERROR).
func (c *DeploymentsClient) WaitReady(ctx context.Context, organisationID, functionID, deploymentID string) (*clevercloud.Deployment, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	// First check immediately
	deployment, err := c.Get(pollCtx, organisationID, functionID, deploymentID)
	if err != nil {
		return nil, err
	}

	if isDeploymentSettled(deployment) {
		if deployment.Status == clevercloud.DeploymentStatusError {
			return deployment, fmt.Errorf("%w: %s", clevercloud.ErrDeploymentFailed, deploymentErrorReason(deployment))
		}

		return deployment, nil
	}

	for {
		select {
		case <-pollCtx.Done():
			// Return the last known state on timeout
			return deployment, fmt.Errorf("timeout waiting for deployment to become ready: %w", pollCtx.Err())
		case <-ticker.C:
			deployment, err = c.Get(pollCtx, organisationID, functionID, deploymentID)
			if err != nil {
				return nil, err
			}

			if isDeploymentSettled(deployment) {
				if deployment.Status == clevercloud.DeploymentStatusError {
					return deployment, fmt.Errorf("%w: %s", clevercloud.ErrDeploymentFailed, deploymentErrorReason(deployment))
				}

				return deployment, nil
			}
		}
	}
}

// isDeploymentSettled checks if a deployment is in a terminal status.
func isDeploymentSettled(deployment *clevercloud.Deployment) bool {
	return deployment.Status == clevercloud.DeploymentStatusReady ||
		deployment.Status == clevercloud.DeploymentStatusError
}

// deploymentErrorReason formats the failure reason for display.
func deploymentErrorReason(deployment *clevercloud.Deployment) string {
	if deployment.ErrorReason == nil || *deployment.ErrorReason == "" {
		return "no error details available"
	}

	return *deployment.ErrorReason
}
