package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v68/github"
)

// MaxPerPage is the largest page the search endpoint serves. Only the first page is read.
const MaxPerPage = 100

var (
	// ErrEmptyResponse is returned when the search endpoint answers with no body.
	ErrEmptyResponse = errors.New("empty response body")
	// ErrNoItems is returned when the response body has no item list.
	ErrNoItems = errors.New("response has no items")
)

// SearchOptions returns the fixed search options: most-starred first, one full page.
func SearchOptions() *gh.SearchOptions {
	return &gh.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: MaxPerPage},
	}
}

// SearchRepos runs a single repository search and validates the envelope. It returns
// the decoded result together with the raw body so callers can persist it as received.
func SearchRepos(ctx context.Context, client Client, query string) (*SearchResult, []byte, error) {
	body, _, err := client.SearchRepositories(ctx, query, SearchOptions())
	if err != nil {
		return nil, nil, err
	}
	result, err := ParseSearchResult(body)
	if err != nil {
		return nil, nil, err
	}
	return result, body, nil
}

// ParseSearchResult decodes a search envelope, rejecting empty bodies and
// error-shaped responses.
func ParseSearchResult(body []byte) (*SearchResult, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResponse
	}
	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if result.Items == nil {
		if result.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoItems, result.Message)
		}
		return nil, ErrNoItems
	}
	return &result, nil
}
