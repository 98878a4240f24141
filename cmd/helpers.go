/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackcat/stackcat/internal/aws"
	"github.com/stackcat/stackcat/internal/catalog"
	"github.com/stackcat/stackcat/internal/config"
	"github.com/stackcat/stackcat/internal/ops"
)

// service can be injected for testing
var service ops.Service

// SetService allows injection of a service (for testing)
func SetService(s ops.Service) {
	service = s
}

// getService returns the service instance, building the default wiring
// from configuration if none is set.
func getService(cmd *cobra.Command) (ops.Service, error) {
	if service != nil {
		return service, nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}

	client, err := aws.NewDefaultClient(ctx, aws.Config{
		Region:  cfg.Region,
		Profile: cfg.Profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}

	store := catalog.NewStore(catalog.NewDirRepository(cfg.CataloguePath))
	waiter := aws.WaiterConfig{
		Interval:    cfg.Waiter.Interval(),
		MaxAttempts: cfg.Waiter.MaxAttempts,
	}

	service = ops.NewServiceWithWaiter(store, client.NewCloudFormationOperations(), waiter)
	return service, nil
}

// loadConfig loads configuration and applies command-line flag overrides.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	var provider config.Provider
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		provider = config.NewFileProvider(path)
	} else {
		provider = config.NewDefaultProvider()
	}

	cfg, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	if catalogue, _ := cmd.Flags().GetString("catalogue"); catalogue != "" {
		cfg.CataloguePath = catalogue
	}
	if region, _ := cmd.Flags().GetString("region"); region != "" {
		cfg.Region = region
	}
	if profile, _ := cmd.Flags().GetString("profile"); profile != "" {
		cfg.Profile = profile
	}

	return cfg, nil
}

// emit renders an operation envelope. With --json the raw envelope is
// printed; otherwise render produces the human-readable form. A failure
// envelope becomes the command's error either way.
func emit(cmd *cobra.Command, success bool, errMsg string, envelope any, render func() string) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		cmd.Println(string(data))
		if !success {
			return errors.New(errMsg)
		}
		return nil
	}

	if !success {
		return errors.New(errMsg)
	}
	cmd.Print(render())
	return nil
}

// parseKeyValues parses repeated key=value flag occurrences.
func parseKeyValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair %q", pair)
		}
		values[key] = value
	}
	return values, nil
}
