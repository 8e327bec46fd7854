package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

const (
	signatureMethod = "HMAC-SHA512"
	oauthVersion    = "1.0"
)

// OAuth1Authorizer signs each request independently following RFC 5849 with
// an HMAC-SHA512 digest. Every signature carries a fresh nonce and
// timestamp; no state is shared between requests.
type OAuth1Authorizer struct {
	credentials clevercloud.OAuth1Credentials
	nonce       func() string
	now         func() time.Time
}

// NewOAuth1Authorizer creates a signer for the given credential payload.
func NewOAuth1Authorizer(credentials clevercloud.OAuth1Credentials) *OAuth1Authorizer {
	return &OAuth1Authorizer{
		credentials: credentials,
		nonce:       uuid.NewString,
		now:         time.Now,
	}
}

// Authorize computes the signature over the request method, URL and query
// and attaches the OAuth authorization header.
func (a *OAuth1Authorizer) Authorize(req *http.Request) error {
	params := map[string]string{
		"oauth_consumer_key":     a.credentials.ConsumerKey,
		"oauth_nonce":            a.nonce(),
		"oauth_signature_method": signatureMethod,
		"oauth_timestamp":        strconv.FormatInt(a.now().Unix(), 10),
		"oauth_token":            a.credentials.Token,
		"oauth_version":          oauthVersion,
	}

	params["oauth_signature"] = a.sign(signatureBase(req.Method, req.URL, params))

	req.Header.Set("Authorization", authorizationHeader(params))

	return nil
}

func (a *OAuth1Authorizer) sign(base string) string {
	key := percentEncode(a.credentials.ConsumerSecret) + "&" + percentEncode(a.credentials.Secret)

	mac := hmac.New(sha512.New, []byte(key))
	_, _ = mac.Write([]byte(base))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signatureBase builds the RFC 5849 signature base string: the uppercased
// method, the base URI and the normalized protocol plus query parameters,
// each segment percent-encoded and joined with "&".
func signatureBase(method string, requestURL *url.URL, oauthParams map[string]string) string {
	pairs := make([][2]string, 0, len(oauthParams))

	for key, value := range oauthParams {
		pairs = append(pairs, [2]string{percentEncode(key), percentEncode(value)})
	}

	for key, values := range requestURL.Query() {
		for _, value := range values {
			pairs = append(pairs, [2]string{percentEncode(key), percentEncode(value)})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	encoded := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		encoded = append(encoded, pair[0]+"="+pair[1])
	}

	return strings.ToUpper(method) + "&" +
		percentEncode(baseURI(requestURL)) + "&" +
		percentEncode(strings.Join(encoded, "&"))
}

// baseURI is the scheme://host/path part of the URL with lowercased scheme
// and host, default ports omitted, query and fragment excluded.
func baseURI(requestURL *url.URL) string {
	scheme := strings.ToLower(requestURL.Scheme)
	host := strings.ToLower(requestURL.Host)

	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}

	return scheme + "://" + host + requestURL.EscapedPath()
}

// percentEncode applies the RFC 5849 percent-encoding: every byte outside
// ALPHA / DIGIT / "-" / "." / "_" / "~" becomes uppercase %XX.
func percentEncode(s string) string {
	var builder strings.Builder

	for i := 0; i < len(s); i++ {
		b := s[i]
		if isUnreserved(b) {
			builder.WriteByte(b)
		} else {
			builder.WriteString(fmt.Sprintf("%%%02X", b))
		}
	}

	return builder.String()
}

func isUnreserved(b byte) bool {
	return b >= 'A' && b <= 'Z' ||
		b >= 'a' && b <= 'z' ||
		b >= '0' && b <= '9' ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

// authorizationHeader renders the OAuth header with quoted, encoded
// parameters in sorted order.
func authorizationHeader(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, percentEncode(key)+`="`+percentEncode(params[key])+`"`)
	}

	return "OAuth " + strings.Join(parts, ", ")
}
