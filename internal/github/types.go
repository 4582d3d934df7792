package github

import gh "github.com/google/go-github/v68/github"

// RawItem is one repository hit from the search endpoint.
type RawItem struct {
	FullName        string  `json:"full_name"`
	HTMLURL         string  `json:"html_url"`
	ForksCount      int     `json:"forks_count"`
	StargazersCount int     `json:"stargazers_count"`
	CreatedAt       string  `json:"created_at"`
	Description     *string `json:"description"`
}

// SearchResult is the search response envelope. Items is nil when the body
// carried no item list, which is how the API reports errors.
type SearchResult struct {
	TotalCount        int       `json:"total_count"`
	IncompleteResults bool      `json:"incomplete_results"`
	Items             []RawItem `json:"items"`
	Message           string    `json:"message,omitempty"`
}

// Detail holds the fields of a repository detail lookup that feed the enriched
// record. A nil field means the response did not carry it.
type Detail struct {
	Followers   *int
	Forks       *int
	Stars       *int
	Description *string
}

func detailFromRepository(r *gh.Repository) *Detail {
	return &Detail{
		Followers:   r.SubscribersCount,
		Forks:       r.ForksCount,
		Stars:       r.StargazersCount,
		Description: r.Description,
	}
}
