package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teemow/gohub/github"
	"github.com/teemow/gohub/internal/instrumentation"
	"github.com/teemow/gohub/internal/logging"
	"github.com/teemow/gohub/internal/server"
)

// rootCmd represents the base command for the gohub application
var rootCmd = &cobra.Command{
	Use:   "gohub",
	Short: "Typed command-line client for the GitHub v3 API",
	Long: `gohub talks to the GitHub v3 REST API with a typed client.

Authentication is read from the GITHUB_TOKEN environment variable.
Without a token, requests are made anonymously and only public
resources are reachable.`,
	SilenceUsage: true,
}

var verbose bool

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gohub version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newReposCmd())
	rootCmd.AddCommand(newIssuesCmd())
	rootCmd.AddCommand(newGistsCmd())
	rootCmd.AddCommand(newReleasesCmd())
	rootCmd.AddCommand(newMetricsCmd())
}

// newGitHubClient builds a client from the process environment. The
// returned shutdown function flushes instrumentation and must be called
// before exit.
func newGitHubClient(ctx context.Context) (*github.Client, func(), error) {
	logger := newLogger()

	config := instrumentation.DefaultConfig()
	config.ServiceVersion = version
	provider, err := instrumentation.NewProvider(ctx, config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize instrumentation: %w", err)
	}

	token := viper.GetString("GITHUB_TOKEN")
	logger.Debug("creating github client", slog.String("token", logging.SanitizeToken(token)))

	client := github.NewClient("gohub/"+version, token).
		WithLogger(logger).
		WithMetrics(provider.Metrics())

	shutdown := func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}
	return client, shutdown, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// splitRepo splits an "owner/repo" argument into its two parts.
func splitRepo(arg string) (string, string, error) {
	owner, repo, ok := strings.Cut(arg, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("expected repository as owner/repo, got %q", arg)
	}
	return owner, repo, nil
}

func newMetricsCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Serve Prometheus metrics for scraping",
		Long: `Start a standalone metrics server exposing the client's Prometheus
metrics on /metrics. Intended for long-running use of gohub as a library
host; the command blocks until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := instrumentation.DefaultConfig()
			config.ServiceVersion = version
			config.MetricsExporter = instrumentation.ExporterPrometheus

			provider, err := instrumentation.NewProvider(cmd.Context(), config)
			if err != nil {
				return fmt.Errorf("failed to initialize instrumentation: %w", err)
			}
			defer func() {
				_ = provider.Shutdown(context.Background())
			}()

			srv, err := server.NewMetricsServer(server.MetricsServerConfig{
				Addr:                    addr,
				Enabled:                 true,
				InstrumentationProvider: provider,
			})
			if err != nil {
				return fmt.Errorf("failed to create metrics server: %w", err)
			}

			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()

			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("metrics server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultMetricsAddr, "address to bind the metrics server to")
	return cmd
}
