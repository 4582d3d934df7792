package trending

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements ghub.Client for testing.
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

func okResponse() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: 200}}
}

// detailClient answers detail lookups from a map of full name to follower count.
// Names missing from the map fail like a 404.
func detailClient(followers map[string]int) *mockClient {
	return &mockClient{
		getRepositoryFn: func(_ context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
			n, ok := followers[owner+"/"+repo]
			if !ok {
				return nil, nil, errors.New("404 Not Found")
			}
			return &gh.Repository{SubscribersCount: gh.Ptr(n)}, okResponse(), nil
		},
	}
}

func writeRaw(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func noPause(context.Context, time.Duration) {}
