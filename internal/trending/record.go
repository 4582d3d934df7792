package trending

import (
	"sort"
	"strings"

	ghub "github.com/stahnma/gh-trending/internal/github"
)

// EnrichedRecord is one entry of an output file.
type EnrichedRecord struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Followers   int    `json:"followers"`
	Forks       int    `json:"forks"`
	Stars       int    `json:"stars"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
}

// Merge combines a search hit with its detail lookup. A nil detail, or one without
// a follower count, yields followers 0 and the search hit's own counts and description.
// Otherwise detail values win and omitted ones fall back to the search hit.
func Merge(detail *ghub.Detail, item ghub.RawItem) EnrichedRecord {
	rec := EnrichedRecord{
		Name:        item.FullName,
		URL:         item.HTMLURL,
		Forks:       item.ForksCount,
		Stars:       item.StargazersCount,
		CreatedAt:   DatePart(item.CreatedAt),
		Description: deref(item.Description),
	}
	if detail == nil || detail.Followers == nil {
		return rec
	}

	rec.Followers = max(*detail.Followers, 0)
	if detail.Forks != nil {
		rec.Forks = *detail.Forks
	}
	if detail.Stars != nil {
		rec.Stars = *detail.Stars
	}
	if detail.Description != nil {
		rec.Description = *detail.Description
	}
	return rec
}

// DatePart returns the date component of an ISO-8601 timestamp.
func DatePart(createdAt string) string {
	date, _, _ := strings.Cut(createdAt, "T")
	return date
}

// SortByFollowers orders records by followers, highest first. Ties keep their
// original order.
func SortByFollowers(records []EnrichedRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Followers > records[j].Followers
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
