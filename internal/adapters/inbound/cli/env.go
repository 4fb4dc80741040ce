package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bleready/bleready/internal/adapters/outbound/checklist"
	"github.com/bleready/bleready/internal/adapters/outbound/config"
	"github.com/bleready/bleready/internal/adapters/outbound/gitinfo"
	"github.com/bleready/bleready/internal/adapters/outbound/loader"
	"github.com/bleready/bleready/internal/adapters/outbound/technical"
	"github.com/bleready/bleready/internal/adapters/outbound/tracker"
	"github.com/bleready/bleready/internal/application"
	"github.com/bleready/bleready/internal/domain"
)

// globalFlags are persistent flags that override .bleready.yaml.
type globalFlags struct {
	configDir string
	output    string
	logLevel  string
	logFormat string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configDir, "config-dir", ".", "Directory containing .bleready.yaml")
	pf.StringVarP(&f.output, "output", "o", "", "Output format: auto, text or json")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
}

// env is the resolved runtime environment of a command.
type env struct {
	cfg     domain.Config
	logger  *slog.Logger
	results domain.ResultLoader
	git     domain.GitInfo
}

// resolve loads config and applies flag overrides on top of it.
func (f *globalFlags) resolve(cmd *cobra.Command) (*env, error) {
	var configs domain.ConfigLoader = config.New()
	cfg, err := configs.Load(f.configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if f.output != "" {
		cfg.Output = domain.OutputFormat(f.output)
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return &env{
		cfg:     cfg,
		logger:  newLogger(cmd.ErrOrStderr(), cfg),
		results: loader.New(),
		git:     gitinfo.New(),
	}, nil
}

func newLogger(w io.Writer, cfg domain.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (e *env) reportService() *application.ReportService {
	return application.NewReportService(
		technical.New(),
		tracker.New(),
		checklist.New(),
		application.WithLogger(e.logger),
	)
}

// wantsJSON resolves the "auto" format: JSON unless stdout is a terminal.
func (e *env) wantsJSON(w io.Writer) bool {
	switch e.cfg.Output {
	case domain.OutputJSON:
		return true
	case domain.OutputText:
		return false
	}
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
