// Package auth implements the request authentication schemes accepted by
// the API: OAuth1 request signing, basic auth and bearer tokens.
package auth

import (
	"net/http"

	cchttp "github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// FromCredentials builds the authorizer matching the active scheme of the
// given credentials. Nil credentials yield a nil authorizer, leaving every
// request unauthenticated.
func FromCredentials(credentials *clevercloud.Credentials) (cchttp.Authorizer, error) {
	if credentials == nil {
		return nil, nil
	}

	switch credentials.Kind() {
	case clevercloud.CredentialsOAuth1:
		oauth1, _ := credentials.OAuth1()
		return NewOAuth1Authorizer(oauth1), nil
	case clevercloud.CredentialsBasic:
		basic, _ := credentials.Basic()
		return &basicAuthorizer{username: basic.Username, password: basic.Password}, nil
	case clevercloud.CredentialsBearer:
		bearer, _ := credentials.Bearer()
		return &bearerAuthorizer{token: bearer.Token}, nil
	default:
		return nil, clevercloud.ErrUnknownCredentials
	}
}

type basicAuthorizer struct {
	username string
	password string
}

func (a *basicAuthorizer) Authorize(req *http.Request) error {
	req.SetBasicAuth(a.username, a.password)

	return nil
}

type bearerAuthorizer struct {
	token string
}

func (a *bearerAuthorizer) Authorize(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.token)

	return nil
}
