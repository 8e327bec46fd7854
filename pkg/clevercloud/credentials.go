package clevercloud

import (
	"encoding/json"
	"fmt"
)

// CredentialsKind identifies the active authentication scheme of a
// Credentials value.
type CredentialsKind string

// Available authentication schemes.
const (
	// CredentialsOAuth1 signs every request with an OAuth1 HMAC signature.
	CredentialsOAuth1 CredentialsKind = "oauth1"
	// CredentialsBasic attaches a static basic-auth header.
	CredentialsBasic CredentialsKind = "basic"
	// CredentialsBearer attaches a static bearer header and routes requests
	// through the API bridge by default.
	CredentialsBearer CredentialsKind = "bearer"
)

// OAuth1Credentials holds the token pair and consumer pair used to sign
// requests.
type OAuth1Credentials struct {
	Token          string `json:"token"           yaml:"token"`
	Secret         string `json:"secret"          yaml:"secret"`
	ConsumerKey    string `json:"consumer-key"    yaml:"consumer-key"`
	ConsumerSecret string `json:"consumer-secret" yaml:"consumer-secret"`
}

// BasicCredentials holds a username/password pair.
type BasicCredentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// BearerCredentials holds a bearer token.
type BearerCredentials struct {
	Token string `json:"token" yaml:"token"`
}

// Credentials is a closed union of authentication schemes with exactly one
// scheme active at a time. Switching schemes is a full replacement, never a
// merge. Construction never validates token shape; malformed values surface
// as authentication failures from the remote service.
type Credentials struct {
	kind   CredentialsKind
	oauth1 OAuth1Credentials
	basic  BasicCredentials
	bearer BearerCredentials
}

// NewOAuth1Credentials creates OAuth1 credentials with the library-wide
// default consumer key and secret.
func NewOAuth1Credentials(token, secret string) *Credentials {
	return NewOAuth1CredentialsWithConsumer(token, secret, "", "")
}

// NewOAuth1CredentialsWithConsumer creates OAuth1 credentials with an
// explicit consumer pair. Empty consumer values fall back to the library-wide
// defaults.
func NewOAuth1CredentialsWithConsumer(token, secret, consumerKey, consumerSecret string) *Credentials {
	if consumerKey == "" {
		consumerKey = DefaultConsumerKey
	}

	if consumerSecret == "" {
		consumerSecret = DefaultConsumerSecret
	}

	return &Credentials{
		kind: CredentialsOAuth1,
		oauth1: OAuth1Credentials{
			Token:          token,
			Secret:         secret,
			ConsumerKey:    consumerKey,
			ConsumerSecret: consumerSecret,
		},
	}
}

// NewBasicCredentials creates basic-auth credentials.
func NewBasicCredentials(username, password string) *Credentials {
	return &Credentials{
		kind:  CredentialsBasic,
		basic: BasicCredentials{Username: username, Password: password},
	}
}

// NewBearerCredentials creates bearer-token credentials. Bearer credentials
// change the default endpoint to the API bridge.
func NewBearerCredentials(token string) *Credentials {
	return &Credentials{
		kind:   CredentialsBearer,
		bearer: BearerCredentials{Token: token},
	}
}

// Kind returns the active authentication scheme.
func (c *Credentials) Kind() CredentialsKind {
	return c.kind
}

// OAuth1 returns the OAuth1 payload. The boolean reports whether OAuth1 is
// the active scheme.
func (c *Credentials) OAuth1() (OAuth1Credentials, bool) {
	return c.oauth1, c.kind == CredentialsOAuth1
}

// Basic returns the basic-auth payload. The boolean reports whether Basic is
// the active scheme.
func (c *Credentials) Basic() (BasicCredentials, bool) {
	return c.basic, c.kind == CredentialsBasic
}

// Bearer returns the bearer payload. The boolean reports whether Bearer is
// the active scheme.
func (c *Credentials) Bearer() (BearerCredentials, bool) {
	return c.bearer, c.kind == CredentialsBearer
}

// DefaultEndpoint returns the endpoint implied by the active scheme: the API
// bridge for Bearer credentials, the public API for everything else
// (including nil credentials).
func (c *Credentials) DefaultEndpoint() string {
	if c != nil && c.kind == CredentialsBearer {
		return PublicAPIBridgeEndpoint
	}

	return PublicEndpoint
}

// MarshalJSON implements json.Marshaler. Only the fields of the active scheme
// are emitted; OAuth1 always includes the resolved consumer pair.
func (c *Credentials) MarshalJSON() ([]byte, error) {
	var (
		payload []byte
		err     error
	)

	switch c.kind {
	case CredentialsOAuth1:
		payload, err = json.Marshal(c.oauth1)
	case CredentialsBasic:
		payload, err = json.Marshal(c.basic)
	case CredentialsBearer:
		payload, err = json.Marshal(c.bearer)
	default:
		return nil, ErrUnknownCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("encoding credentials: %w", err)
	}

	return payload, nil
}

// UnmarshalJSON implements json.Unmarshaler. The active scheme is recovered
// from field presence, trying OAuth1 first, then Basic, then Bearer: a token
// and secret select OAuth1 (with defaulted consumer pair when absent), a
// username and password select Basic, and a lone token selects Bearer.
// Documents matching no scheme fail with ErrUnknownCredentials.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token          string `json:"token"`
		Secret         string `json:"secret"`
		ConsumerKey    string `json:"consumer-key"`
		ConsumerSecret string `json:"consumer-secret"`
		Username       string `json:"username"`
		Password       string `json:"password"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("parsing credentials: %w", err)
	}

	switch {
	case raw.Token != "" && raw.Secret != "":
		*c = *NewOAuth1CredentialsWithConsumer(raw.Token, raw.Secret, raw.ConsumerKey, raw.ConsumerSecret)
	case raw.Username != "" && raw.Password != "":
		*c = *NewBasicCredentials(raw.Username, raw.Password)
	case raw.Token != "":
		*c = *NewBearerCredentials(raw.Token)
	default:
		return ErrUnknownCredentials
	}

	return nil
}
