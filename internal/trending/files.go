package trending

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	ghub "github.com/stahnma/gh-trending/internal/github"
)

// ErrRawMissing is returned when a window's raw file has not been fetched yet.
var ErrRawMissing = errors.New("raw file not found")

// ReadRawFile loads a persisted search envelope.
func ReadRawFile(path string) (*ghub.SearchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRawMissing, path)
		}
		return nil, err
	}
	var result ghub.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &result, nil
}

// ReadOutputFile loads an enriched output file.
func ReadOutputFile(path string) ([]EnrichedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []EnrichedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return records, nil
}
