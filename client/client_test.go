package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/curalink/telehealth-client/models"
)

func TestNormalizeOrigin(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		expected string
	}{
		{
			name:     "empty origin falls back to the local default",
			origin:   "",
			expected: "http://localhost:4000/api",
		},
		{
			name:     "origin without the api segment gets it appended",
			origin:   "https://backend.curalink.example.com",
			expected: "https://backend.curalink.example.com/api",
		},
		{
			name:     "origin already ending in the api segment is kept",
			origin:   "https://backend.curalink.example.com/api",
			expected: "https://backend.curalink.example.com/api",
		},
		{
			name:     "trailing slashes are trimmed before appending",
			origin:   "https://backend.curalink.example.com/",
			expected: "https://backend.curalink.example.com/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeOrigin(tt.origin))
		})
	}
}

func TestDoReturnsEmptyResultOn204(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/consultation/c1/end", func(w http.ResponseWriter, _ *http.Request) {
		// no body at all: the client must not attempt to parse one
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.EndConsultation(context.Background(), "c1")
	assert.NoError(t, err)
}

func TestDoExtractsServerErrorMessage(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/consultation/active", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "account suspended"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ActiveConsultations(context.Background())

	var apiErr *models.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "account suspended", err.Error())
}

func TestDoFallsBackWhenErrorBodyUnparseable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "html error page", body: "<html>bad gateway</html>"},
		{name: "empty body", body: ""},
		{name: "json without error field", body: `{"message": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/consultation/active", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			})
			srv := httptest.NewServer(r)
			defer srv.Close()

			c := New(srv.URL, nil)
			_, err := c.ActiveConsultations(context.Background())

			var apiErr *models.APIError
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, models.FallbackErrorMessage, err.Error())
		})
	}
}

func TestDoTreatsMalformedSuccessBodyAsEmpty(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/consultation/active", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, nil)
	list, err := c.ActiveConsultations(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestDoAttachesBearerTokenWhenAvailable(t *testing.T) {
	var gotAuth, gotRequestID string
	r := mux.NewRouter()
	r.HandleFunc("/api/consultation/active", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotRequestID = req.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, StaticTokenSource("tok-123"))
	_, err := c.ActiveConsultations(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	var authPresent bool
	r := mux.NewRouter()
	r.HandleFunc("/api/consultation/active", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		_, authPresent = req.Header["Authorization"]
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ActiveConsultations(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, authPresent)
}

func TestDoWrapsNetworkFailuresAsTransportErrors(t *testing.T) {
	// nothing listens here
	c := New("http://127.0.0.1:1/api", nil)
	_, err := c.ActiveConsultations(context.Background())

	assert.Error(t, err)
	assert.True(t, IsTransportError(err))

	// a transport failure is a distinct kind, not a server rejection
	var apiErr *models.APIError
	assert.False(t, errors.As(err, &apiErr))
}
