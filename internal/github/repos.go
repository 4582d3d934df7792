package github

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/stahnma/gh-trending/internal/cache"
)

// SplitFullName splits "owner/name" into its parts.
func SplitFullName(fullName string) (string, string, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository name %q, expected 'owner/name'", fullName)
	}
	return owner, name, nil
}

// GetDetail looks up a single repository by its full name. A nil memo disables
// memoization and every call reaches the API.
func GetDetail(ctx context.Context, client Client, memo *cache.Cache, fullName string, debugMode bool) (*Detail, error) {
	owner, name, err := SplitFullName(fullName)
	if err != nil {
		return nil, err
	}

	cacheKey := "detail:" + owner + "/" + name
	if memo != nil {
		if val, found := memo.Get(cacheKey); found {
			if debugMode {
				log.Printf("Cache hit for key: %s", cacheKey)
			}
			if d, ok := val.(*Detail); ok {
				return d, nil
			}
		}
		if debugMode {
			log.Printf("Cache miss for key: %s", cacheKey)
		}
	}

	repository, _, err := client.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	if repository == nil {
		return nil, fmt.Errorf("no repository returned for %s", fullName)
	}
	detail := detailFromRepository(repository)
	if memo != nil {
		memo.Set(cacheKey, detail)
	}
	return detail, nil
}
