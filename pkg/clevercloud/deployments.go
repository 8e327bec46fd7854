package clevercloud

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Platform identifies the language toolchain a WebAssembly deployment was
// built with.
type Platform string

// Supported WebAssembly platforms.
const (
	PlatformRust           Platform = "RUST"
	PlatformAssemblyScript Platform = "ASSEMBLY_SCRIPT"
	PlatformTinyGo         Platform = "TINY_GO"
	PlatformJavaScript     Platform = "JAVA_SCRIPT"
)

// ParsePlatform parses a platform name, ignoring case, surrounding
// whitespace and underscores. "js" and "go" are accepted as shorthands.
// Unknown names fail with ErrInvalidPlatform.
func ParsePlatform(s string) (Platform, error) {
	switch normalizeEnum(s) {
	case "rust":
		return PlatformRust, nil
	case "javascript", "js":
		return PlatformJavaScript, nil
	case "tinygo", "go":
		return PlatformTinyGo, nil
	case "assemblyscript":
		return PlatformAssemblyScript, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
}

// UnmarshalJSON implements json.Unmarshaler, rejecting wire values outside
// the supported set.
func (p *Platform) UnmarshalJSON(data []byte) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("parsing platform: %w", err)
	}

	switch Platform(s) {
	case PlatformRust, PlatformAssemblyScript, PlatformTinyGo, PlatformJavaScript:
		*p = Platform(s)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
}

// DeploymentStatus is the lifecycle state of a deployment. The remote
// service owns every transition; clients only observe. Ready and Error are
// terminal.
type DeploymentStatus string

// Deployment lifecycle states.
const (
	DeploymentStatusWaitingForUpload DeploymentStatus = "WAITING_FOR_UPLOAD"
	DeploymentStatusPackaging        DeploymentStatus = "PACKAGING"
	DeploymentStatusDeploying        DeploymentStatus = "DEPLOYING"
	DeploymentStatusReady            DeploymentStatus = "READY"
	DeploymentStatusError            DeploymentStatus = "ERROR"
)

// ParseDeploymentStatus parses a status name, ignoring case, surrounding
// whitespace and underscores. Unknown names fail with ErrInvalidStatus.
func ParseDeploymentStatus(s string) (DeploymentStatus, error) {
	switch normalizeEnum(s) {
	case "waitingforupload":
		return DeploymentStatusWaitingForUpload, nil
	case "packaging":
		return DeploymentStatusPackaging, nil
	case "deploying":
		return DeploymentStatusDeploying, nil
	case "ready":
		return DeploymentStatusReady, nil
	case "error":
		return DeploymentStatusError, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// UnmarshalJSON implements json.Unmarshaler, rejecting wire values outside
// the known lifecycle states.
func (s *DeploymentStatus) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("parsing deployment status: %w", err)
	}

	switch DeploymentStatus(raw) {
	case DeploymentStatusWaitingForUpload, DeploymentStatusPackaging,
		DeploymentStatusDeploying, DeploymentStatusReady, DeploymentStatusError:
		*s = DeploymentStatus(raw)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

func normalizeEnum(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), "_", "")
}

// DeploymentOpts is the payload for creating a deployment.
type DeploymentOpts struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Tag         *string  `json:"tag"`
	Platform    Platform `json:"platform"`
}

// DeploymentCreation is the response to a deployment creation. It is the
// only place the one-time upload URL appears; get and list never expose it.
type DeploymentCreation struct {
	ID          string           `json:"id"`
	FunctionID  string           `json:"functionId"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Tag         *string          `json:"tag"`
	Platform    Platform         `json:"platform"`
	Status      DeploymentStatus `json:"status"`
	ErrorReason *string          `json:"errorReason"`
	UploadURL   string           `json:"uploadUrl"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Deployment is one shipped version of a function. URL is only set once the
// deployment reached Ready.
type Deployment struct {
	ID          string           `json:"id"`
	FunctionID  string           `json:"functionId"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Tag         *string          `json:"tag"`
	Platform    Platform         `json:"platform"`
	Status      DeploymentStatus `json:"status"`
	ErrorReason *string          `json:"errorReason"`
	URL         *string          `json:"url"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ExecutableDeployment selects the deployment whose published URL should
// serve executions: among deployments that are Ready and carry a URL, the
// one with the earliest creation date. Returns ErrNoReadyDeployment when
// none qualifies.
func ExecutableDeployment(deployments []Deployment) (*Deployment, error) {
	candidates := make([]Deployment, 0, len(deployments))

	for _, deployment := range deployments {
		if deployment.Status == DeploymentStatusReady && deployment.URL != nil {
			candidates = append(candidates, deployment)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoReadyDeployment
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})

	return &candidates[0], nil
}
