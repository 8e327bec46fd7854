package clevercloud

import (
	"fmt"
	"strings"
)

// AddonProviderID identifies one of the managed-service providers exposed by
// the v4 API.
type AddonProviderID string

// Known addon provider identifiers.
const (
	AddonProviderPostgreSQL     AddonProviderID = "postgresql-addon"
	AddonProviderRedis          AddonProviderID = "redis-addon"
	AddonProviderMySQL          AddonProviderID = "mysql-addon"
	AddonProviderMongoDB        AddonProviderID = "mongodb-addon"
	AddonProviderPulsar         AddonProviderID = "addon-pulsar"
	AddonProviderConfigProvider AddonProviderID = "config-provider"
	AddonProviderElasticSearch  AddonProviderID = "es-addon"
)

// ParseAddonProviderID parses a provider identifier, ignoring case and
// surrounding whitespace. Unknown identifiers fail with
// ErrInvalidProviderID.
func ParseAddonProviderID(s string) (AddonProviderID, error) {
	switch AddonProviderID(strings.ToLower(strings.TrimSpace(s))) {
	case AddonProviderPostgreSQL:
		return AddonProviderPostgreSQL, nil
	case AddonProviderRedis:
		return AddonProviderRedis, nil
	case AddonProviderMySQL:
		return AddonProviderMySQL, nil
	case AddonProviderMongoDB:
		return AddonProviderMongoDB, nil
	case AddonProviderPulsar:
		return AddonProviderPulsar, nil
	case AddonProviderConfigProvider:
		return AddonProviderConfigProvider, nil
	case AddonProviderElasticSearch:
		return AddonProviderElasticSearch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProviderID, s)
	}
}

// String returns the wire form of the identifier.
func (id AddonProviderID) String() string {
	return string(id)
}

// ClusterFeature reports whether a named capability is enabled on a cluster.
type ClusterFeature struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Cluster describes a shared cluster operated by an addon provider. Version
// fields are plain strings since each provider versions its engine
// differently.
type Cluster struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Zone     string           `json:"zone"`
	Features []ClusterFeature `json:"features"`
	Version  string           `json:"version"`
}

// AddonProviderInfo is the v4 view of an addon provider: its shared clusters
// and the engine versions available for dedicated deployments.
type AddonProviderInfo struct {
	ProviderID              AddonProviderID             `json:"providerId"`
	Clusters                []Cluster                   `json:"clusters"`
	Dedicated               map[string][]ClusterFeature `json:"dedicated"`
	DefaultDedicatedVersion string                      `json:"defaultDedicatedVersion"`
}
