package libraries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchParsesInstantAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "golang", r.URL.Query().Get("q"))
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "1", r.URL.Query().Get("no_html"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"AbstractText": "Go is a programming language.",
			"AbstractURL": "https://go.dev",
			"RelatedTopics": [
				{"Text": "Gopher", "FirstURL": "https://go.dev/gopher"},
				{"Name": "Category without direct link"},
				{"Text": "Modules", "FirstURL": "https://go.dev/ref/mod"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewSearchClientWithBase(srv.Client(), srv.URL)
	results, err := client.Search(context.Background(), "golang")
	require.NoError(t, err)

	require.Len(t, results, 3)
	require.Equal(t, SearchResult{
		Title:   "Summary",
		Snippet: "Go is a programming language.",
		URL:     "https://go.dev",
	}, results[0])
	require.Equal(t, "Gopher", results[1].Title)
	require.Equal(t, "https://go.dev/ref/mod", results[2].URL)
}

func TestSearchSkipsAbsentAbstract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"AbstractText": "", "RelatedTopics": []}`))
	}))
	defer srv.Close()

	client := NewSearchClientWithBase(srv.Client(), srv.URL)
	results, err := client.Search(context.Background(), "obscure")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewSearchClientWithBase(srv.Client(), srv.URL)
	_, err := client.Search(context.Background(), "golang")
	require.Error(t, err)
}
