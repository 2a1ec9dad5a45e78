// Package cli implements the datastore command line tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/viant/datastore"
	"github.com/viant/datastore/config"
	"github.com/viant/datastore/log"
)

// Run parses args and executes a single get or set operation against the
// configured store.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	cfg, err := options.loadConfig(ctx)
	if err != nil {
		return err
	}
	client, err := datastore.New(cfg)
	if err != nil {
		return err
	}
	logger := &log.Default{}
	switch options.Args.Operation {
	case "get":
		payload, err := client.GetData(ctx, options.UserID, options.UserToken, logger)
		if err != nil {
			return err
		}
		output, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(output))
		return nil
	case "set":
		var payload any
		if err := json.Unmarshal([]byte(options.Data), &payload); err != nil {
			return fmt.Errorf("invalid -d payload: %w", err)
		}
		return client.SetData(ctx, options.UserID, options.UserToken, payload, logger)
	default:
		return fmt.Errorf("unsupported operation %q, expected get or set", options.Args.Operation)
	}
}

// loadConfig prefers an explicit config document, falling back to the
// individual flag and environment values.
func (o *Options) loadConfig(ctx context.Context) (*config.Config, error) {
	if o.ConfigURL != "" {
		return config.Load(ctx, o.ConfigURL)
	}
	return config.New(o.ServiceSecret, o.ServiceToken, o.ServiceSlug, o.URL)
}
