package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	searchFn        func(ctx context.Context, query string, opts *gh.SearchOptions) ([]byte, *gh.Response, error)
	getRepositoryFn func(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
}

func (m *mockClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) ([]byte, *gh.Response, error) {
	return m.searchFn(ctx, query, opts)
}

func (m *mockClient) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
	return m.getRepositoryFn(ctx, owner, repo)
}

// okResponse returns a *gh.Response with status 200.
func okResponse() *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: 200},
	}
}
