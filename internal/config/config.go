package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPaceInterval is the delay inserted after each repository detail lookup.
const DefaultPaceInterval = 100 * time.Millisecond

// Config holds application configuration loaded from environment variables.
type Config struct {
	GitHubToken  string
	APIBaseURL   string
	SlackMode    bool
	DebugMode    bool
	RawDir       string
	OutputDir    string
	PaceInterval time.Duration
	MemoDetails  bool
	S3Bucket     string
	S3Prefix     string
	AWSRegion    string
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	v := viper.New()
	v.AutomaticEnv()

	baseDir := "data"
	if v.GetString("LAMBDA_TASK_ROOT") != "" {
		baseDir = filepath.Join("/tmp", "data")
	}
	v.SetDefault("RAW_DIR", filepath.Join(baseDir, "raw"))
	v.SetDefault("OUTPUT_DIR", baseDir)
	v.SetDefault("PACE_INTERVAL", DefaultPaceInterval)

	pace := v.GetDuration("PACE_INTERVAL")
	if pace < 0 {
		pace = 0
	}

	return Config{
		GitHubToken:  v.GetString("GITHUB_TOKEN"),
		APIBaseURL:   v.GetString("GITHUB_API_URL"),
		SlackMode:    truthy(v.GetString("SLACK_MODE")),
		DebugMode:    truthy(v.GetString("DEBUG")),
		RawDir:       v.GetString("RAW_DIR"),
		OutputDir:    v.GetString("OUTPUT_DIR"),
		PaceInterval: pace,
		S3Bucket:     v.GetString("S3_BUCKET_NAME"),
		S3Prefix:     v.GetString("S3_OBJECT_PREFIX"),
		AWSRegion:    v.GetString("AWS_REGION"),
	}
}

func truthy(val string) bool {
	return val != "" && val != "0" && strings.ToLower(val) != "false"
}
