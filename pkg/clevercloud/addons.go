package clevercloud

// AddonProvider describes a managed-service provider as returned by the v2
// product catalog, including the plans it currently offers.
type AddonProvider struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Website          string      `json:"website"`
	SupportEmail     string      `json:"supportEmail"`
	GooglePlusName   string      `json:"googlePlusName"`
	TwitterName      string      `json:"twitterName"`
	AnalyticsID      string      `json:"analyticsId"`
	ShortDescription string      `json:"shortDesc"`
	LongDescription  string      `json:"longDesc"`
	LogoURL          string      `json:"logoUrl"`
	Status           string      `json:"status"`
	OpenInNewTab     bool        `json:"openInNewTab"`
	CanUpgrade       bool        `json:"canUpgrade"`
	Regions          []string    `json:"regions"`
	Plans            []AddonPlan `json:"plans"`
}

// AddonPlanFeature describes one capability line of a plan, such as memory
// or disk size.
type AddonPlanFeature struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Value           string  `json:"value"`
	ComputableValue *string `json:"computable_value"`
	NameCode        *string `json:"name_code"`
}

// AddonPlan describes a billing plan of an addon provider.
type AddonPlan struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Slug     string             `json:"slug"`
	Price    float32            `json:"price"`
	PriceID  string             `json:"price_id"`
	Features []AddonPlanFeature `json:"features"`
	Zones    []string           `json:"zones"`
}

// Addon is a provisioned managed service owned by an organisation.
type Addon struct {
	ID           string        `json:"id"`
	Name         *string       `json:"name"`
	RealID       string        `json:"realId"`
	Region       string        `json:"region"`
	Provider     AddonProvider `json:"provider"`
	Plan         AddonPlan     `json:"plan"`
	CreationDate uint64        `json:"creationDate"`
	ConfigKeys   []string      `json:"configKeys"`
}

// AddonOptions carries provider-specific provisioning options. Empty fields
// are omitted from the request body.
type AddonOptions struct {
	Version    string `json:"version,omitempty"`
	Encryption string `json:"encryption,omitempty"`
	Services   string `json:"services,omitempty"`
}

// AddonCreateRequest is the payload for provisioning a new addon.
type AddonCreateRequest struct {
	Name       string       `json:"name"`
	Region     string       `json:"region"`
	ProviderID string       `json:"providerId"`
	Plan       string       `json:"plan"`
	Options    AddonOptions `json:"options"`
}
