package github

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// Client defines the GitHub API methods used by this application.
type Client interface {
	// SearchRepositories returns the undecoded search response body.
	SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) ([]byte, *gh.Response, error)
	GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner *gh.Client
}

// NewClient creates a GitHub API client. An empty token yields an unauthenticated
// client; otherwise requests carry "Authorization: token <token>". A non-empty
// baseURL replaces the public API endpoint.
func NewClient(token, baseURL string) (Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "token"})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	inner := gh.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing GitHub API URL %q: %w", baseURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("GitHub API URL %q must be absolute", baseURL)
		}
		inner.BaseURL = u
	}
	return &realClient{inner: inner}, nil
}

func (c *realClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) ([]byte, *gh.Response, error) {
	req, err := c.inner.NewRequest(http.MethodGet, "search/repositories?"+searchParams(query, opts).Encode(), nil)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	resp, err := c.inner.Do(ctx, req, &buf)
	if err != nil {
		return nil, resp, err
	}
	return buf.Bytes(), resp, nil
}

// GetRepository fetches one repository with the default v3 Accept header.
func (c *realClient) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
	u := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	req, err := c.inner.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}
	repository := new(gh.Repository)
	resp, err := c.inner.Do(ctx, req, repository)
	if err != nil {
		return nil, resp, err
	}
	return repository, resp, nil
}

func searchParams(query string, opts *gh.SearchOptions) url.Values {
	params := url.Values{"q": {query}}
	if opts == nil {
		return params
	}
	if opts.Sort != "" {
		params.Set("sort", opts.Sort)
	}
	if opts.Order != "" {
		params.Set("order", opts.Order)
	}
	if opts.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	return params
}
