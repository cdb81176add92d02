package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/avasquez614/search"
	"github.com/avasquez614/search/internal/logger"
)

var (
	serverURL string
	indexID   string
	debug     bool
	jsonLogs  bool
	timeout   time.Duration
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "searchctl",
		Short:         "Command-line client for the search server REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if jsonLogs {
				level := zerolog.InfoLevel
				if debug {
					level = zerolog.DebugLevel
				}
				log.Logger = logger.NewWithWriter(cmd.ErrOrStderr(), "searchctl").Level(level)
			} else {
				log.Logger = logger.NewConsole(cmd.ErrOrStderr(), debug)
			}
			if debug {
				log.Debug().Msg("debug logging enabled")
			}
		},
	}

	defaultURL := getEnv("SEARCH_CLIENT_SERVER_URL", "http://localhost:8080/crafter-search")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", defaultURL, "Base URL of the search server")
	rootCmd.PersistentFlags().StringVarP(&indexID, "index", "i", "", "Index id (server default when empty)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log HTTP traffic")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Write logs as JSON instead of console text")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-command timeout")

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newUpdateFileCmd())

	return rootCmd
}

func newClient() (*search.Client, error) {
	return search.New(serverURL, search.WithDebugLogging(debug))
}

func newSearchCmd() *cobra.Command {
	var rawQuery string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a query and print the JSON response",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			res, err := c.Search(ctx, indexID, search.QueryString(rawQuery))
			if err != nil {
				log.Error().Stack().Err(err).Str("index_id", indexID).Str("query", rawQuery).Dur("elapsed", time.Since(start)).Msg("search failed")
				return err
			}
			log.Debug().Str("index_id", indexID).Dur("elapsed", time.Since(start)).Msg("search completed")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVarP(&rawQuery, "query", "q", "", "Encoded query string, e.g. q=title:foo&rows=10 (required)")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var site, id, xml, xmlPath string
	var ignoreRoot bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Index an XML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (xml == "") == (xmlPath == "") {
				return fmt.Errorf("exactly one of --xml or --file is required")
			}
			if xmlPath != "" {
				b, err := os.ReadFile(xmlPath)
				if err != nil {
					return err
				}
				xml = string(b)
			}
			return runString(cmd, "update", func(ctx context.Context, c *search.Client) (string, error) {
				return c.Update(ctx, indexID, search.UpdateRequest{
					Site:                   site,
					ID:                     id,
					XML:                    xml,
					IgnoreRootInFieldNames: ignoreRoot,
				})
			})
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "Site (required)")
	cmd.Flags().StringVar(&id, "id", "", "Document id (required)")
	cmd.Flags().StringVar(&xml, "xml", "", "Inline XML document")
	cmd.Flags().StringVar(&xmlPath, "file", "", "Path of the XML document")
	cmd.Flags().BoolVar(&ignoreRoot, "ignore-root", true, "Strip the root element name from field names")
	_ = cmd.MarkFlagRequired("site")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var site, id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a document from the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runString(cmd, "delete", func(ctx context.Context, c *search.Client) (string, error) {
				return c.Delete(ctx, indexID, site, id)
			})
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "Site (required)")
	cmd.Flags().StringVar(&id, "id", "", "Document id (required)")
	_ = cmd.MarkFlagRequired("site")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Make pending writes visible to searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runString(cmd, "commit", func(ctx context.Context, c *search.Client) (string, error) {
				return c.Commit(ctx, indexID)
			})
		},
	}
}

func newUpdateFileCmd() *cobra.Command {
	var site, id, path string
	var fields []string

	cmd := &cobra.Command{
		Use:   "update-file",
		Short: "Upload a binary file to be parsed and indexed",
		RunE: func(cmd *cobra.Command, args []string) error {
			additional, err := parseFields(fields)
			if err != nil {
				return err
			}
			if id == "" {
				id = path
			}
			return runString(cmd, "update-file", func(ctx context.Context, c *search.Client) (string, error) {
				return c.UpdateFile(ctx, indexID, search.FileUpdateRequest{
					Site:             site,
					ID:               id,
					Content:          search.FileContent(path),
					AdditionalFields: additional,
				})
			})
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "Site (required)")
	cmd.Flags().StringVar(&id, "id", "", "Document id (defaults to --path)")
	cmd.Flags().StringVar(&path, "path", "", "Path of the file to upload (required)")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "Additional field as name=value; repeat for multiple values")
	_ = cmd.MarkFlagRequired("site")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

// runString runs an operation that answers with a status message and prints it.
func runString(cmd *cobra.Command, name string, fn func(context.Context, *search.Client) (string, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	start := time.Now()
	msg, err := fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Stack().Err(err).Str("operation", name).Str("index_id", indexID).Dur("elapsed", elapsed).Msg("operation failed")
		return err
	}
	log.Debug().Str("operation", name).Str("index_id", indexID).Dur("elapsed", elapsed).Msg("operation completed")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return err
}

// parseFields turns repeated name=value flags into a multi-valued map.
func parseFields(raw []string) (map[string][]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string][]string)
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --field %q, expected name=value", kv)
		}
		out[name] = append(out[name], value)
	}
	return out, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
