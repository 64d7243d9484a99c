package portal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"netconnect/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientFor(detectURL, loginURL string) *Client {
	return NewClient(config.Portal{
		DetectURL:   detectURL,
		LoginURL:    loginURL,
		ServiceName: config.DefaultServiceName,
	})
}

func TestDetectNoPortal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("success\n"))
	}))
	defer srv.Close()

	captive, err := clientFor(srv.URL, "").Detect()
	require.NoError(t, err)
	assert.False(t, captive)
}

func TestDetectPortalRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://portal.example/login", http.StatusFound)
	}))
	defer srv.Close()

	captive, err := clientFor(srv.URL, "").Detect()
	require.NoError(t, err)
	assert.True(t, captive)
}

func TestDetectPortalInterceptedBody(t *testing.T) {
	// Some gateways return 200 with their own login page instead of
	// redirecting.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>please log in</html>"))
	}))
	defer srv.Close()

	captive, err := clientFor(srv.URL, "").Detect()
	require.NoError(t, err)
	assert.True(t, captive)
}

func TestDetectUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := clientFor(srv.URL, "").Detect()
	assert.Error(t, err)
}

func TestLoginPostsForm(t *testing.T) {
	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
	}))
	defer srv.Close()

	err := clientFor("", srv.URL).Login("21BCE1234", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, []string{"21BCE1234"}, form["userId"])
	assert.Equal(t, []string{"hunter2"}, form["password"])
	assert.Equal(t, []string{config.DefaultServiceName}, form["serviceName"])
}

func TestLoginNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := clientFor("", srv.URL).Login("user", "pass")
	assert.ErrorContains(t, err, "403")
}
