package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"familytree/internal/blob"
	"familytree/internal/cli"
	"familytree/internal/config"
	"familytree/internal/core"
	"familytree/internal/infra/persistence/memory"
	"familytree/internal/loader"
	"familytree/internal/logging"

	"github.com/spf13/cobra"
)

const inputPrompt = "Input file: "

// errLoadFailed ends the run with exit code 1 after the user-facing
// message has been printed.
var errLoadFailed = errors.New("load failed")

type app struct {
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	configPath    string
	logLevel      string
	logFormat     string
	metricsListen string
	table         string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *app {
	return &app{stdin: bufio.NewReader(stdin), stdout: stdout, stderr: stderr, getenv: getenv}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "familytree [input]",
		Short: "Query a family tree loaded from a data file",
		Long: `familytree loads persons from a data file of name;height;father;mother
lines and answers lineage queries (children, parents, siblings, cousins,
grandchildren and grandparents at any level, tallest and shortest in
lineage) at an interactive prompt.

The input may be a local path, s3://bucket/key, sqlite://path or a
postgres:// connection URL. Without one the program asks for it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&a.logFormat, "log-format", "", "Log format (text, json, auto)")
	cmd.Flags().StringVar(&a.metricsListen, "metrics-listen", "", "Serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&a.table, "table", "", "Person table for sqlite:// and postgres:// inputs")
	return cmd
}

func (a *app) execute(args []string) int {
	cmd := a.rootCmd()
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errLoadFailed) {
			_, _ = fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// loadConfig layers defaults, the config file, the environment and flags.
func (a *app) loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(a.getenv); err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics-listen") {
		cfg.Metrics.Listen = a.metricsListen
	}
	if flags.Changed("table") {
		cfg.Source.Table = a.table
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *app) run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	metrics := core.NewMetrics()
	store := memory.NewStore()
	svc := core.NewService(store, core.WithLogger(logger), core.WithMetrics(metrics))

	location := cfg.Input
	if location == "" {
		if location, err = a.promptInput(); err != nil {
			return err
		}
	}
	src, err := loader.Open(ctx, location, loader.Options{
		Table: cfg.Source.Table,
		S3: blob.S3Config{
			Region:    cfg.Source.S3.Region,
			Endpoint:  cfg.Source.S3.Endpoint,
			PathStyle: cfg.Source.S3.PathStyle,
		},
	})
	if err != nil {
		return a.reportLoadError(logger, err)
	}
	defer func() { _ = src.Close() }()
	if _, err := loader.New(store, a.stdout, loader.WithLogger(logger), loader.WithMetrics(metrics)).Load(ctx, src); err != nil {
		return a.reportLoadError(logger, err)
	}
	if _, err := svc.CheckIntegrity(ctx); err != nil {
		return err
	}

	if cfg.Metrics.Listen != "" {
		srv := newMetricsServer(cfg.Metrics.Listen, metrics)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "addr", cfg.Metrics.Listen, "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("metrics listening", "addr", cfg.Metrics.Listen)
	}

	return cli.New(svc, a.stdin, a.stdout).Run(ctx)
}

// promptInput asks for the data location. End of input yields an empty
// location, which then fails to open.
func (a *app) promptInput() (string, error) {
	if _, err := io.WriteString(a.stdout, inputPrompt); err != nil {
		return "", err
	}
	line, err := a.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// reportLoadError prints the user-facing line for open failures; load
// errors have already printed theirs.
func (a *app) reportLoadError(logger *slog.Logger, err error) error {
	var oe *loader.OpenError
	if errors.As(err, &oe) {
		logger.Info("open data source", "location", oe.Location, "error", oe.Err)
		if _, werr := fmt.Fprintln(a.stdout, oe.Error()); werr != nil {
			return werr
		}
		return errLoadFailed
	}
	var le *loader.LoadError
	if errors.As(err, &le) {
		return errLoadFailed
	}
	return err
}

func newMetricsServer(addr string, metrics *core.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
