package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-trending/internal/cache"
	"github.com/stahnma/gh-trending/internal/config"
	ghub "github.com/stahnma/gh-trending/internal/github"
	"github.com/stahnma/gh-trending/internal/publish"
	"github.com/stahnma/gh-trending/internal/trending"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	GHClient ghub.Client
	Memo     *cache.Cache
	Uploader publish.Uploader
	Now      func() time.Time
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		Now:      time.Now,
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// ensureClient creates the GitHub client if it doesn't exist. A missing token is
// not an error; requests are then sent unauthenticated.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	client, err := ghub.NewClient(a.Config.GitHubToken, a.Config.APIBaseURL)
	if err != nil {
		return err
	}
	a.GHClient = client
	return nil
}

func (a *App) ensureUploader(ctx context.Context) error {
	if a.Uploader != nil {
		return nil
	}
	up, err := publish.NewS3Uploader(ctx, a.Config.AWSRegion)
	if err != nil {
		return err
	}
	a.Uploader = up
	return nil
}

// memo returns the in-run detail memo, or nil when memoization is off.
func (a *App) memo() *cache.Cache {
	if !a.Config.MemoDetails {
		return nil
	}
	if a.Memo == nil {
		a.Memo = cache.New()
	}
	return a.Memo
}

// Fetch runs the search for every window and writes the raw files.
func (a *App) Fetch(ctx context.Context, w io.Writer) (trending.FetchSummary, error) {
	if err := a.ensureClient(); err != nil {
		return trending.FetchSummary{}, err
	}
	f := &trending.Fetcher{
		Client: a.GHClient,
		RawDir: a.Config.RawDir,
		Out:    w,
		Now:    a.Now,
	}
	return f.Run(ctx), nil
}

// Enrich reads every raw file and writes the sorted output files.
func (a *App) Enrich(ctx context.Context, w io.Writer) (trending.EnrichSummary, error) {
	if err := a.ensureClient(); err != nil {
		return trending.EnrichSummary{}, err
	}
	e := &trending.Enricher{
		Client:    a.GHClient,
		Memo:      a.memo(),
		RawDir:    a.Config.RawDir,
		OutputDir: a.Config.OutputDir,
		Pace:      a.Config.PaceInterval,
		Out:       w,
		Debug:     a.Config.DebugMode,
	}
	return e.Run(ctx), nil
}

// Publish uploads the output files to S3.
func (a *App) Publish(ctx context.Context) (int, error) {
	if a.Config.S3Bucket == "" {
		return 0, fmt.Errorf("S3_BUCKET_NAME must be set")
	}
	if err := a.ensureUploader(ctx); err != nil {
		return 0, err
	}
	names := make([]string, 0, len(trending.Windows))
	for _, win := range trending.Windows {
		names = append(names, win.OutputFile)
	}
	return publish.Publish(ctx, a.Uploader, a.Config.S3Bucket, a.Config.S3Prefix, a.Config.OutputDir, names)
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   os.Args[0],
		Short: "Collect recently created, popular GitHub repositories with their follower counts.",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&a.Config.MemoDetails, "memo", a.Config.MemoDetails, "Reuse detail lookups for repositories seen earlier in the same run")

	rootCmd.AddCommand(a.newFetchCommand())
	rootCmd.AddCommand(a.newEnrichCommand())
	rootCmd.AddCommand(a.newRunCommand())
	rootCmd.AddCommand(a.newPublishCommand())
	rootCmd.AddCommand(a.newShowCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
