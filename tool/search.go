package tool

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// InternetSearch looks up a topic using the DuckDuckGo Instant Answer API,
// which requires no API key. Results are condensed into a short bulleted
// summary suitable for feeding back into the reasoning loop.
type InternetSearch struct {
	client     *http.Client
	baseURL    string
	maxResults int
}

// InternetSearchOptions configure an InternetSearch tool.
type InternetSearchOptions struct {
	// HTTPClient overrides the default client (10s timeout).
	HTTPClient *http.Client
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// MaxResults caps the number of related results included. Default 5.
	MaxResults int
}

// NewInternetSearch constructs the search tool.
func NewInternetSearch(optFns ...func(o *InternetSearchOptions)) *InternetSearch {
	opts := InternetSearchOptions{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    "https://api.duckduckgo.com/",
		MaxResults: 5,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InternetSearch{
		client:     opts.HTTPClient,
		baseURL:    opts.BaseURL,
		maxResults: opts.MaxResults,
	}
}

// Name implements Tool.
func (s *InternetSearch) Name() string { return "internet_search_tool" }

// Description implements Tool.
func (s *InternetSearch) Description() string {
	return "searches the internet for information on a given topic or query. returns a summary of the search results."
}

// ArgumentHint implements Tool.
func (s *InternetSearch) ArgumentHint() string {
	return "the search query or topic to look up online."
}

// Execute implements Tool. An empty query is an error; the agent loop will
// surface it to the model as an observation so it can retry with a real query.
func (s *InternetSearch) Execute(ctx context.Context, argument string) (string, error) {
	query := strings.TrimSpace(argument)
	if query == "" {
		return "", NewError(s.Name(), "search query is empty", "EMPTY_ARGUMENT")
	}

	endpoint := fmt.Sprintf("%s?q=%s&format=json&no_html=1&skip_disambig=1",
		s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read search response: %w", err)
	}

	summary := s.formatResults(query, body)
	if summary == "" {
		return fmt.Sprintf("No results found for %q.", query), nil
	}
	return summary, nil
}

// formatResults condenses the Instant Answer payload into bulleted text.
// The payload shape varies per query, so fields are probed with gjson rather
// than decoded into a fixed struct.
func (s *InternetSearch) formatResults(query string, body []byte) string {
	var b strings.Builder

	if abstract := gjson.GetBytes(body, "AbstractText").String(); abstract != "" {
		fmt.Fprintf(&b, "Search results for %q:\n- %s", query, abstract)
		if source := gjson.GetBytes(body, "AbstractURL").String(); source != "" {
			fmt.Fprintf(&b, " (source: %s)", source)
		}
	}

	count := 0
	gjson.GetBytes(body, "RelatedTopics").ForEach(func(_, topic gjson.Result) bool {
		text := topic.Get("Text").String()
		if text == "" {
			// Grouped topics nest one level deeper.
			text = topic.Get("Topics.0.Text").String()
		}
		if text == "" {
			return true
		}
		if b.Len() == 0 {
			fmt.Fprintf(&b, "Search results for %q:", query)
		}
		fmt.Fprintf(&b, "\n- %s", text)
		count++
		return count < s.maxResults
	})

	return b.String()
}
