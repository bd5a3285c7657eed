package geo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/8.8.8.8/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"city": "Mountain View",
			"region": "California",
			"country": "US",
			"postal": "94043",
			"timezone": "America/Los_Angeles"
		}`))
	}))
	defer srv.Close()

	loc := NewIPInfo(srv.URL).Lookup("8.8.8.8")
	assert.Equal(t, "Mountain View", loc.City)
	assert.Equal(t, "California", loc.Region)
	assert.Equal(t, "US", loc.Country)
	assert.Equal(t, "94043", loc.Postal)
	assert.Equal(t, "America/Los_Angeles", loc.Timezone)
}

func TestLookup_ZeroValueClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"city": "Oslo"}`))
	}))
	defer srv.Close()

	// a literal IPInfo without a Client must still work
	c := &IPInfo{BaseURL: srv.URL}
	loc := c.Lookup("1.2.3.4")
	assert.Equal(t, "Oslo", loc.City)
}

func TestLookup_MissingFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"city": "Berlin"}`))
	}))
	defer srv.Close()

	loc := NewIPInfo(srv.URL).Lookup("1.2.3.4")
	assert.Equal(t, "Berlin", loc.City)
	assert.Equal(t, Unknown, loc.Region)
	assert.Equal(t, Unknown, loc.Country)
	assert.Equal(t, Unknown, loc.Postal)
	assert.Equal(t, Unknown, loc.Timezone)
}

func TestLookup_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	loc := NewIPInfo(srv.URL).Lookup("1.2.3.4")
	assert.Equal(t, Placeholder(), loc)
}

func TestLookup_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	loc := NewIPInfo(srv.URL).Lookup("1.2.3.4")
	assert.Equal(t, Placeholder(), loc)
}
