package clevercloud

// API endpoints.
const (
	// PublicEndpoint is the base URL of the public Clever Cloud API. It is
	// the default endpoint for OAuth1 and Basic credentials.
	PublicEndpoint = "https://api.clever-cloud.com"

	// PublicAPIBridgeEndpoint is the base URL of the API bridge gateway.
	// It becomes the default endpoint when Bearer credentials are used: the
	// bridge translates bearer tokens into API calls, so selecting Bearer
	// silently reroutes traffic unless the caller overrides the endpoint.
	PublicAPIBridgeEndpoint = "https://api-bridge.clever-cloud.com"
)

// OAuth1 consumer defaults.
const (
	// DefaultConsumerKey is the consumer key used to sign requests when
	// OAuth1 credentials do not carry their own consumer pair. It matches
	// the consumer key shipped with the official command line tools.
	DefaultConsumerKey = "T5nFjKeHH4AIlEveuGhB5S3xg8T19e"

	// DefaultConsumerSecret is the consumer secret paired with
	// DefaultConsumerKey.
	DefaultConsumerSecret = "MgVMqTr6fWlf2M0tkC2MXOnhfqBWDT"
)

// MimeApplicationWASM is the content type of a WebAssembly artifact uploaded
// to a deployment's pre-signed URL.
const MimeApplicationWASM = "application/wasm"

// Zone tags used by the zone list filters.
const (
	// ZoneTagApplications marks zones open to applications and addons.
	ZoneTagApplications = "for:applications"

	// ZoneTagHDS marks zones certified for health data hosting.
	ZoneTagHDS = "certification:hds"
)

// PlanConfigProvider is the unique plan of the config-provider addon. The
// addon is free to use, so the plan identifier is hard-coded by the platform.
const PlanConfigProvider = "plan_5d8e9596-dd73-4b73-84d9-e165372c5324"
