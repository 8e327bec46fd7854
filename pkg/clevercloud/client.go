package clevercloud

import (
	"context"
	"net/http"
	"time"
)

// AccountClients provides access to account-scoped resource clients.
type AccountClients interface {
	Self() SelfClient
	Zones() ZonesClient
}

// AddonClients provides access to addon-related resource clients.
type AddonClients interface {
	Addons() AddonsClient
	AddonProviders() AddonProvidersClient
	Environment() EnvironmentClient
}

// FunctionClients provides access to functions and deployments resource
// clients.
type FunctionClients interface {
	Functions() FunctionsClient
	Deployments() DeploymentsClient
}

// Client is the typed Clever Cloud API client.
type Client interface {
	// Composite interfaces for related resource groups
	AccountClients
	AddonClients
	FunctionClients

	// SetCredentials replaces the credentials used by subsequent requests.
	// The caller must not invoke it concurrently with in-flight requests.
	SetCredentials(credentials *Credentials)
}

// SelfClient provides access to the account owning the credentials.
type SelfClient interface {
	Get(ctx context.Context) (*Myself, error)
}

// AddonsClient provides access to the addons of an organisation.
type AddonsClient interface {
	List(ctx context.Context, organisationID string) ([]Addon, error)
	Get(ctx context.Context, organisationID, addonID string) (*Addon, error)
	Create(ctx context.Context, organisationID string, request *AddonCreateRequest) (*Addon, error)
	Delete(ctx context.Context, organisationID, addonID string) error
	Environment(ctx context.Context, organisationID, addonID string) (map[string]string, error)
}

// AddonProvidersClient provides access to the addon provider catalog.
type AddonProvidersClient interface {
	List(ctx context.Context) ([]AddonProvider, error)
	Get(ctx context.Context, providerID AddonProviderID) (*AddonProviderInfo, error)
	FindPlan(ctx context.Context, providerID AddonProviderID, pattern string) (*AddonPlan, error)
}

// ZonesClient provides access to deployment zones.
type ZonesClient interface {
	List(ctx context.Context) ([]Zone, error)
	Applications(ctx context.Context) ([]Zone, error)
	HDS(ctx context.Context) ([]Zone, error)
}

// FunctionsClient provides access to WebAssembly functions.
type FunctionsClient interface {
	List(ctx context.Context, organisationID string) ([]Function, error)
	Create(ctx context.Context, organisationID string, opts *FunctionOpts) (*Function, error)
	Get(ctx context.Context, organisationID, functionID string) (*Function, error)
	Update(ctx context.Context, organisationID, functionID string, opts *FunctionOpts) (*Function, error)
	Delete(ctx context.Context, organisationID, functionID string) error
	Execute(ctx context.Context, url string) (*ExecutionResult, error)
}

// DeploymentsClient provides access to the deployments of a function,
// including the multi-step deploy workflow.
type DeploymentsClient interface {
	List(ctx context.Context, organisationID, functionID string) ([]Deployment, error)
	Create(ctx context.Context, organisationID, functionID string, opts *DeploymentOpts) (*DeploymentCreation, error)
	Get(ctx context.Context, organisationID, functionID, deploymentID string) (*Deployment, error)
	Delete(ctx context.Context, organisationID, functionID, deploymentID string) error
	Upload(ctx context.Context, uploadURL string, code []byte) error
	Trigger(ctx context.Context, organisationID, functionID, deploymentID string) error
	Executable(ctx context.Context, organisationID, functionID string) (*Deployment, error)
	Deploy(ctx context.Context, organisationID, functionID string, opts *DeploymentOpts, code []byte) (*Deployment, error)
	WaitReady(ctx context.Context, organisationID, functionID, deploymentID string) (*Deployment, error)
}

// EnvironmentClient provides access to config-provider addon environments.
//
// Insert, BulkInsert, Remove and BulkRemove read the full variable set,
// apply the change and write the full set back. Concurrent writers race on
// the whole set and the last one wins.
type EnvironmentClient interface {
	Get(ctx context.Context, addonID string) ([]Variable, error)
	Put(ctx context.Context, addonID string, variables []Variable) ([]Variable, error)
	Insert(ctx context.Context, addonID, name, value string) ([]Variable, error)
	BulkInsert(ctx context.Context, addonID string, variables []Variable) ([]Variable, error)
	Remove(ctx context.Context, addonID, name string) ([]Variable, error)
	BulkRemove(ctx context.Context, addonID string, names []string) ([]Variable, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a clevercloud.Client.
//
// # Endpoint precedence
//
// The following precedence is applied by the concrete client implementation
// (see pkg/ccclient and internal/client):
//  1. Endpoint: if set, used after normalization (trailing slash trimmed,
//     "https://" prepended when no scheme is present).
//  2. Credentials default: Bearer credentials route to the API bridge.
//  3. The public API endpoint.
//
// # Authentication
//
// Credentials selects one of the OAuth1, Basic and Bearer schemes. OAuth1
// requests are signed individually; Basic and Bearer attach a static header.
// Nil credentials leave requests unauthenticated.
//
// # Timeouts and transport
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. HTTPTimeout bounds each HTTP exchange when no custom
// HTTPClient is provided. The client never retries on its own; callers who
// want retry semantics inject an HTTPClient that provides them.
type Config struct {
	// Endpoint: base URL for the API (e.g., "https://api.clever-cloud.com").
	// Empty means the default implied by the credentials.
	Endpoint string

	// Credentials: authentication scheme and secrets. Nil disables
	// authentication entirely.
	Credentials *Credentials

	// Optional configurations
	// HTTPClient: underlying HTTP client. When nil a pooled client with
	// HTTPTimeout applied is used.
	HTTPClient *http.Client
	// HTTPTimeout: timeout applied to the default HTTP client. Ignored when
	// HTTPClient is set.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
