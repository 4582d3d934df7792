package github

import (
	"context"
	"errors"
	"strings"
	"testing"

	gh "github.com/google/go-github/v68/github"
)

func searchClient(body string, err error) *mockClient {
	return &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) ([]byte, *gh.Response, error) {
			if err != nil {
				return nil, nil, err
			}
			return []byte(body), okResponse(), nil
		},
	}
}

func TestSearchOptions(t *testing.T) {
	opts := SearchOptions()
	if opts.Sort != "stars" {
		t.Errorf("Sort = %q, want stars", opts.Sort)
	}
	if opts.Order != "desc" {
		t.Errorf("Order = %q, want desc", opts.Order)
	}
	if opts.PerPage != 100 {
		t.Errorf("PerPage = %d, want 100", opts.PerPage)
	}
	if opts.Page != 0 {
		t.Errorf("Page = %d, want 0 (first page only)", opts.Page)
	}
}

func TestSearchRepos_Basic(t *testing.T) {
	body := `{"total_count": 2, "incomplete_results": false, "items": [
		{"full_name": "alice/one", "html_url": "https://github.com/alice/one", "forks_count": 3, "stargazers_count": 120, "created_at": "2024-03-01T12:00:00Z", "description": "first"},
		{"full_name": "bob/two", "html_url": "https://github.com/bob/two", "forks_count": 1, "stargazers_count": 80, "created_at": "2024-03-02T08:00:00Z", "description": null}
	]}`
	var gotQuery string
	var gotOpts *gh.SearchOptions
	client := &mockClient{
		searchFn: func(_ context.Context, query string, opts *gh.SearchOptions) ([]byte, *gh.Response, error) {
			gotQuery = query
			gotOpts = opts
			return []byte(body), okResponse(), nil
		},
	}

	result, raw, err := SearchRepos(context.Background(), client, "created:>2024-02-01 stars:>50")
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery != "created:>2024-02-01 stars:>50" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotOpts == nil || gotOpts.Sort != "stars" || gotOpts.PerPage != 100 {
		t.Errorf("unexpected options: %+v", gotOpts)
	}
	if string(raw) != body {
		t.Error("raw body should be returned unchanged")
	}
	if len(result.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(result.Items))
	}
	first := result.Items[0]
	if first.FullName != "alice/one" || first.StargazersCount != 120 || first.ForksCount != 3 {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.Description == nil || *first.Description != "first" {
		t.Errorf("description = %v, want first", first.Description)
	}
	if result.Items[1].Description != nil {
		t.Error("null description should decode to nil")
	}
}

func TestSearchRepos_EmptyItems(t *testing.T) {
	result, _, err := SearchRepos(context.Background(), searchClient(`{"total_count": 0, "items": []}`, nil), "q")
	if err != nil {
		t.Fatalf("an empty item list is a valid result, got %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("got %d items, want 0", len(result.Items))
	}
}

func TestSearchRepos_TransportError(t *testing.T) {
	_, _, err := SearchRepos(context.Background(), searchClient("", errors.New("connection refused")), "q")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSearchRepos_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "   \n"} {
		_, _, err := SearchRepos(context.Background(), searchClient(body, nil), "q")
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("body %q: got %v, want ErrEmptyResponse", body, err)
		}
	}
}

func TestSearchRepos_InvalidJSON(t *testing.T) {
	_, _, err := SearchRepos(context.Background(), searchClient("<html>oops</html>", nil), "q")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrNoItems) || errors.Is(err, ErrEmptyResponse) {
		t.Errorf("invalid JSON should not be reported as %v", err)
	}
}

func TestSearchRepos_ErrorEnvelope(t *testing.T) {
	body := `{"message": "API rate limit exceeded", "documentation_url": "https://docs.github.com"}`
	_, _, err := SearchRepos(context.Background(), searchClient(body, nil), "q")
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("got %v, want ErrNoItems", err)
	}
	if !strings.Contains(err.Error(), "API rate limit exceeded") {
		t.Errorf("error should carry the API message, got %q", err.Error())
	}
}

func TestParseSearchResult_NullItems(t *testing.T) {
	_, err := ParseSearchResult([]byte(`{"items": null}`))
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("got %v, want ErrNoItems", err)
	}
}
