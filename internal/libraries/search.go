// Package libraries holds thin clients and helpers for external services
// and document formats: web search, document text extraction and the .docx
// report writer.
package libraries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"synthesistalk-backend/internal/apperr"
)

const duckDuckGoURL = "https://api.duckduckgo.com/"

// maxRelatedTopics caps how many related topics make it into the results.
const maxRelatedTopics = 5

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// instantAnswer is the subset of the DuckDuckGo Instant Answer response we
// read. Related topics may be nested category objects; those come through
// with empty Text/FirstURL and are skipped.
type instantAnswer struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// SearchClient queries the DuckDuckGo Instant Answer API.
type SearchClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewSearchClient() *SearchClient {
	return &SearchClient{httpClient: http.DefaultClient, baseURL: duckDuckGoURL}
}

// NewSearchClientWithBase is used by tests to point at a fake server.
func NewSearchClientWithBase(client *http.Client, baseURL string) *SearchClient {
	return &SearchClient{httpClient: client, baseURL: baseURL}
}

// Search returns the abstract (if any) followed by up to five related
// topics.
func (c *SearchClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUpstreamUnavailable, "Search error: "+err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("search provider returned status %d", resp.StatusCode)
		return nil, apperr.Wrap(apperr.CodeUpstreamUnavailable, "Search error: "+err.Error(), err)
	}

	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, apperr.Wrap(apperr.CodeUpstreamUnavailable, "Search error: invalid response", err)
	}

	results := []SearchResult{}
	if answer.AbstractText != "" {
		results = append(results, SearchResult{
			Title:   "Summary",
			Snippet: answer.AbstractText,
			URL:     answer.AbstractURL,
		})
	}
	for i, topic := range answer.RelatedTopics {
		if i >= maxRelatedTopics {
			break
		}
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		results = append(results, SearchResult{
			Title:   topic.Text,
			Snippet: topic.Text,
			URL:     topic.FirstURL,
		})
	}
	return results, nil
}
