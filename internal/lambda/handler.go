package lambda

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stahnma/gh-trending/internal/commands"
)

// NewHandler returns a Lambda handler that fetches, enriches and uploads every
// time window to S3.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		var buf bytes.Buffer
		defer func() {
			if buf.Len() > 0 {
				log.Print(buf.String())
			}
		}()

		fetched, err := app.Fetch(ctx, &buf)
		if err != nil {
			return "", fmt.Errorf("fetch: %w", err)
		}
		if fetched.Saved == 0 {
			return "", errors.New("fetch: no time window could be fetched")
		}

		enriched, err := app.Enrich(ctx, &buf)
		if err != nil {
			return "", fmt.Errorf("enrich: %w", err)
		}
		if enriched.Saved == 0 {
			return "", errors.New("enrich: no output file was written")
		}

		n, err := app.Publish(ctx)
		if err != nil {
			return "", fmt.Errorf("publish: %w", err)
		}

		return fmt.Sprintf("Lambda executed successfully and %d files uploaded to S3", n), nil
	}
}
