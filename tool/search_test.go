package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestSearch(srv *httptest.Server) *InternetSearch {
	return NewInternetSearch(func(o *InternetSearchOptions) {
		o.BaseURL = srv.URL
		o.HTTPClient = srv.Client()
	})
}

func TestInternetSearch_AbstractAndTopics(t *testing.T) {
	srv := newSearchServer(t, `{
		"AbstractText": "Quantum computing uses qubits.",
		"AbstractURL": "https://example.org/quantum",
		"RelatedTopics": [
			{"Text": "Qubit - basic unit of quantum information"},
			{"Topics": [{"Text": "Nested grouped topic"}]}
		]
	}`)

	s := newTestSearch(srv)
	out, err := s.Execute(context.Background(), "quantum computing")
	require.NoError(t, err)

	assert.Contains(t, out, `Search results for "quantum computing":`)
	assert.Contains(t, out, "Quantum computing uses qubits.")
	assert.Contains(t, out, "https://example.org/quantum")
	assert.Contains(t, out, "Qubit - basic unit of quantum information")
	assert.Contains(t, out, "Nested grouped topic")
}

func TestInternetSearch_NoResults(t *testing.T) {
	srv := newSearchServer(t, `{"AbstractText": "", "RelatedTopics": []}`)

	s := newTestSearch(srv)
	out, err := s.Execute(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found")
}

func TestInternetSearch_EmptyQuery(t *testing.T) {
	s := NewInternetSearch()
	_, err := s.Execute(context.Background(), "   ")
	require.Error(t, err)

	var toolErr *Error
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "EMPTY_ARGUMENT", toolErr.Code)
}

func TestInternetSearch_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	s := newTestSearch(srv)
	_, err := s.Execute(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestInternetSearch_MaxResultsCap(t *testing.T) {
	srv := newSearchServer(t, `{
		"RelatedTopics": [
			{"Text": "one"}, {"Text": "two"}, {"Text": "three"}
		]
	}`)

	s := NewInternetSearch(func(o *InternetSearchOptions) {
		o.BaseURL = srv.URL
		o.HTTPClient = srv.Client()
		o.MaxResults = 2
	})

	out, err := s.Execute(context.Background(), "q")
	require.NoError(t, err)
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.NotContains(t, out, "three")
}
