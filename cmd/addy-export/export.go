// Copyright 2025 Addykit, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addykit/addy-export/internal/addy"
	"github.com/addykit/addy-export/internal/config"
	"github.com/addykit/addy-export/internal/export"
	"github.com/addykit/addy-export/internal/logging"
	"github.com/addykit/addy-export/internal/output"
)

// exportOptions carries the flag values for a run.
type exportOptions struct {
	logLevel   string
	columns    string
	configPath string
}

func newRootCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "addy-export <token> <output-file>",
		Short: "Export addy.io alias records to a CSV file",
		Long: `addy-export fetches every alias record from an addy.io account and writes
the selected fields to a CSV file.

The token argument is either the API token itself or the path to a file
whose first line is the token. If the argument is empty, the ADDY_TOKEN
environment variable is used.

By default the CSV columns are inferred from the fetched data (the sorted
union of all fields). Use --columns to select specific fields; every
requested field must then be present in every record or the run aborts
without touching the output file.`,
		Args:          cobra.ExactArgs(2),
		Version:       addy.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info",
		"Log level: debug, info, warning, error, critical")
	cmd.Flags().StringVar(&opts.columns, "columns", "",
		"Comma-separated list of columns to export (default: all fields found in the data)")
	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"Path to a YAML config file (default: standard locations)")

	return cmd
}

// runExport executes one export run: fetch every page, project to a table,
// write the CSV. Nothing is written until the full record set is validated.
func runExport(ctx context.Context, tokenArg, outputFile string, opts exportOptions) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := logging.Setup(logging.Config{Level: level})

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	// Validate the column selection against the known schema before any
	// network call.
	columns := parseColumns(opts.columns)
	if columns != nil {
		if err := addy.ValidateColumnNames(columns); err != nil {
			logger.Error().Err(err).Msg("column selection rejected")
			return err
		}
	}

	token, err := resolveToken(tokenArg, cfg.API.TokenEnv)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve token")
		return err
	}

	var client addy.Client = addy.NewRESTClient(token, cfg.API.Endpoint, cfg.Defaults.PageSize, cfg.Timeout())
	if cfg.API.MaxAttempts > 1 {
		retryCfg := addy.DefaultRetryConfig()
		retryCfg.MaxAttempts = cfg.API.MaxAttempts
		client = addy.NewRetryClient(client, retryCfg, logger)
	}

	logger.Info().Str("endpoint", cfg.API.Endpoint).Msg("starting export")

	records, err := addy.NewPager(client, logger).FetchAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch aliases")
		return err
	}

	table, err := export.Project(records, columns)
	if err != nil {
		var missingErr *export.MissingColumnsError
		if errors.As(err, &missingErr) {
			// Report the record's position in API terms
			page := missingErr.Index/cfg.Defaults.PageSize + 1
			logger.Error().
				Int("page", page).
				Int("record", missingErr.Index%cfg.Defaults.PageSize).
				Strs("missing", missingErr.Columns).
				Msg("missing columns detected, aborting")
		} else {
			logger.Error().Err(err).Msg("projection failed")
		}
		return err
	}

	var writer output.TableWriter = output.NewFileWriter(outputFile)

	logger.Info().Str("file", outputFile).Msg("writing csv")
	if err := writer.WriteTable(table); err != nil {
		logger.Error().Err(err).Str("file", outputFile).Msg("failed to write output")
		return err
	}

	logger.Info().
		Int("records", len(table.Rows)).
		Int("columns", len(table.Header)).
		Str("file", outputFile).
		Msg("export complete")
	return nil
}

// parseColumns splits the --columns value into trimmed names. A flag that
// yields no names, such as "" or ",", means no selection was made and
// projection falls back to inference.
func parseColumns(flag string) []string {
	var columns []string
	for _, part := range strings.Split(flag, ",") {
		if name := strings.TrimSpace(part); name != "" {
			columns = append(columns, name)
		}
	}
	return columns
}

// resolveToken turns the token argument into the bearer token. The argument
// is first tried as a file path whose first line is the token; if no such
// file exists it is used as the literal token. A read error on an existing
// file is fatal rather than a silent fallback. An empty argument falls back
// to the configured environment variable.
func resolveToken(tokenArg, tokenEnv string) (string, error) {
	if tokenArg == "" {
		if token := os.Getenv(tokenEnv); token != "" {
			return token, nil
		}
		return "", fmt.Errorf("API token not found. Pass it as an argument or set %s", tokenEnv)
	}

	data, err := os.ReadFile(tokenArg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tokenArg, nil
		}
		return "", fmt.Errorf("failed to read token file %s: %w", tokenArg, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", tokenArg)
	}
	return token, nil
}
