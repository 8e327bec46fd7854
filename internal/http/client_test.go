package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cchttp "github.com/fivetwenty-io/clevercloud/internal/http"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

type headerAuthorizer struct {
	name  string
	value string
}

func (a *headerAuthorizer) Authorize(req *http.Request) error {
	req.Header.Set(a.name, a.value)

	return nil
}

type failingAuthorizer struct {
	err error
}

func (a *failingAuthorizer) Authorize(_ *http.Request) error {
	return a.err
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.log(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.log(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.log(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.log(msg) }

func (l *recordingLogger) recorded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.messages...)
}

func TestClient_Verbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		call   func(ctx context.Context, client *cchttp.Client) (*cchttp.Response, error)
	}{
		{
			name:   "get",
			method: http.MethodGet,
			call: func(ctx context.Context, client *cchttp.Client) (*cchttp.Response, error) {
				return client.Get(ctx, "/v2/self", nil)
			},
		},
		{
			name:   "post",
			method: http.MethodPost,
			call: func(ctx context.Context, client *cchttp.Client) (*cchttp.Response, error) {
				return client.Post(ctx, "/v2/self", nil)
			},
		},
		{
			name:   "put",
			method: http.MethodPut,
			call: func(ctx context.Context, client *cchttp.Client) (*cchttp.Response, error) {
				return client.Put(ctx, "/v2/self", nil)
			},
		},
		{
			name:   "patch",
			method: http.MethodPatch,
			call: func(ctx context.Context, client *cchttp.Client) (*cchttp.Response, error) {
				return client.Patch(ctx, "/v2/self", nil)
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			call: func(ctx context.Context, client *cchttp.Client) (*cchttp.Response, error) {
				return client.Delete(ctx, "/v2/self")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, "/v2/self", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := cchttp.NewClient(server.URL, nil)

			resp, err := tt.call(context.Background(), client)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestClient_QueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "name", r.URL.Query().Get("sort"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/v2/addons", url.Values{
		"limit": {"10"},
		"sort":  {"name"},
	})
	require.NoError(t, err)
}

func TestClient_QueryAppendsToExistingQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bar", r.URL.Query().Get("foo"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/v2/addons?foo=bar", url.Values{"limit": {"10"}})
	require.NoError(t, err)
}

func TestClient_EncodesJSONBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]string{"name": "my-addon"}, payload)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	resp, err := client.Post(context.Background(), "/v2/addons", map[string]string{"name": "my-addon"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClient_EncodeBodyFailure(t *testing.T) {
	t.Parallel()

	client := cchttp.NewClient("https://api.clever-cloud.com", nil)

	_, err := client.Post(context.Background(), "/v2/addons", make(chan int))
	require.Error(t, err)
	assert.ErrorIs(t, err, clevercloud.ErrEncodeRequest)
}

func TestClient_RawBody(t *testing.T) {
	t.Parallel()

	code := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/wasm", r.Header.Get("Content-Type"))
		assert.Equal(t, int64(len(code)), r.ContentLength)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, code, body)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	resp, err := client.Do(context.Background(), &cchttp.Request{
		Method:      http.MethodPut,
		Path:        "/upload",
		RawBody:     code,
		ContentType: "application/wasm",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_CustomHeadersWin(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Accept"))
		assert.Equal(t, "abc123", r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	_, err := client.Do(context.Background(), &cchttp.Request{
		Method: http.MethodGet,
		Path:   "/v2/self",
		Headers: map[string]string{
			"Accept":       "application/octet-stream",
			"X-Request-ID": "abc123",
		},
	})
	require.NoError(t, err)
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "clevercloud-go/1.0", r.Header.Get("User-Agent"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cchttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/v2/self", nil)
		require.NoError(t, err)
	})

	t.Run("custom", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "my-tool/2.3", r.Header.Get("User-Agent"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cchttp.NewClient(server.URL, nil, cchttp.WithUserAgent("my-tool/2.3"))

		_, err := client.Get(context.Background(), "/v2/self", nil)
		require.NoError(t, err)
	})
}

func TestClient_Authorizer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, &headerAuthorizer{name: "Authorization", value: "Bearer token"})

	_, err := client.Get(context.Background(), "/v2/self", nil)
	require.NoError(t, err)
}

func TestClient_AuthorizerFailure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("no credentials")
	client := cchttp.NewClient("https://api.clever-cloud.com", &failingAuthorizer{err: wantErr})

	_, err := client.Get(context.Background(), "/v2/self", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestClient_UnauthenticatedSkipsAuthorizer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, &headerAuthorizer{name: "Authorization", value: "Bearer token"})

	_, err := client.Do(context.Background(), &cchttp.Request{
		Method:          http.MethodGet,
		Path:            "/public",
		Unauthenticated: true,
	})
	require.NoError(t, err)
}

func TestClient_SetAuthorizer(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, &headerAuthorizer{name: "Authorization", value: "Bearer before"})

	_, err := client.Get(context.Background(), "/v2/self", nil)
	require.NoError(t, err)

	client.SetAuthorizer(&headerAuthorizer{name: "Authorization", value: "Bearer after"})

	_, err = client.Get(context.Background(), "/v2/self", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer before", "Bearer after"}, seen)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"addon not found"}`))
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/v2/addons/missing", nil)
	require.Error(t, err)

	// The response stays usable so callers can inspect the error payload.
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"addon not found"}`, string(resp.Body))

	apiErr := &clevercloud.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, clevercloud.IsNotFound(err))
}

func TestClient_AbsoluteURL(t *testing.T) {
	t.Parallel()

	var uploadCalled bool

	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploadCalled = true
		assert.Equal(t, "/bucket/object", r.URL.Path)
		assert.Equal(t, "sig", r.URL.Query().Get("X-Amz-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer upload.Close()

	api := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("request must not reach the API host")
	}))
	defer api.Close()

	client := cchttp.NewClient(api.URL, nil)

	_, err := client.Do(context.Background(), &cchttp.Request{
		Method: http.MethodPut,
		Path:   upload.URL + "/bucket/object?X-Amz-Signature=sig",
	})
	require.NoError(t, err)
	assert.True(t, uploadCalled)
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		logger := &recordingLogger{}
		client := cchttp.NewClient(server.URL, nil, cchttp.WithLogger(logger), cchttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/v2/self", nil)
		require.NoError(t, err)

		assert.Contains(t, logger.recorded(), "HTTP Request")
		assert.Contains(t, logger.recorded(), "HTTP Response")
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		logger := &recordingLogger{}
		client := cchttp.NewClient(server.URL, nil, cchttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/v2/self", nil)
		require.NoError(t, err)

		assert.Empty(t, logger.recorded())
	})
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/v2/self", nil)
	require.Error(t, err)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/self", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cchttp.NewClient(server.URL+"/", nil)

	_, err := client.Get(context.Background(), "/v2/self", nil)
	require.NoError(t, err)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()

		resp := &cchttp.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"id":"addon_1","region":"par"}`),
		}

		var payload struct {
			ID     string `json:"id"`
			Region string `json:"region"`
		}
		require.NoError(t, cchttp.DecodeJSON(resp, &payload))
		assert.Equal(t, "addon_1", payload.ID)
		assert.Equal(t, "par", payload.Region)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		resp := &cchttp.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{`),
		}

		var payload map[string]interface{}
		err := cchttp.DecodeJSON(resp, &payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, clevercloud.ErrDecodeResponse)
	})
}
