package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/pdfship/pdfship/internal/adapters/fs"
	logAdapter "github.com/pdfship/pdfship/internal/adapters/log"
	"github.com/pdfship/pdfship/internal/cliconfig"
	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/pkg/pdfship"
)

const helpDescription = `
Assemble an ordered set of PDF documents into a single merged output.

Highlights:
  - Validates the session before any I/O: at least two documents, and the
    aggregate page count stays under the configured ceiling (default 150).
  - Writes the merged output atomically; no partial file on failure.
  - Watch mode collects PDFs dropped into an inbox directory and merges on
    shutdown, surviving restarts via a persisted session.
  - Configure via file (~/.pdfship/config.toml), PDFSHIP_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  pdfship merge report.pdf appendix.pdf
  pdfship merge --name bundle.pdf --max-pages 300 a.pdf b.pdf c.pdf
  pdfship watch --inbox-dir ~/scans --output-dir ~/merged
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "pdfship",
		Short:   "Merge ordered PDF documents into one output under a page ceiling",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.pdfship/config.toml)")
	root.PersistentFlags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for merged outputs")
	root.PersistentFlags().StringVar(&cfg.ShareDir, "share-dir", cfg.ShareDir, "directory to copy merged outputs into (optional)")
	root.PersistentFlags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for persisted session state")
	root.PersistentFlags().IntVar(&cfg.MaxTotalPages, "max-pages", cfg.MaxTotalPages, "aggregate page ceiling for a merge")
	root.PersistentFlags().StringVar(&cfg.OutputName, "name", cfg.OutputName, "output name (default derived from the first document)")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "debug logging")

	mergeCmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge the given PDF files in argument order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			return runMerge(cmd.Context(), cfg, args)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch an inbox directory and merge the collected PDFs on shutdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			if cfg.InboxDir == "" {
				return fmt.Errorf("watch requires --inbox-dir")
			}
			return runWatch(cmd.Context(), cfg)
		},
	}
	watchCmd.Flags().StringVar(&cfg.InboxDir, "inbox-dir", cfg.InboxDir, "directory to watch for incoming PDFs")
	watchCmd.Flags().DurationVar(&cfg.SettleDelay, "settle", cfg.SettleDelay, "quiet period before an inbox file is picked up")

	root.AddCommand(mergeCmd, watchCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies file and env configuration under the explicitly set
// flags, then validates.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func newEngine(cfg cliconfig.Config, opts ...pdfship.Option) (*pdfship.Engine, *logAdapter.ZerologAdapter, error) {
	logger := logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger(cfg.Verbose))
	opts = append([]pdfship.Option{pdfship.WithLogger(logger)}, opts...)
	eng, err := pdfship.New(pdfship.Config{
		OutputDir:     cfg.OutputDir,
		ShareDir:      cfg.ShareDir,
		MaxTotalPages: cfg.MaxTotalPages,
	}, opts...)
	return eng, logger, err
}

func runMerge(ctx context.Context, cfg cliconfig.Config, files []string) error {
	eng, logger, err := newEngine(cfg)
	if err != nil {
		return err
	}

	inputs := make([]pdfship.Input, len(files))
	for i, f := range files {
		inputs[i] = pdfship.Input{Path: f}
	}
	_, failed := eng.Add(ctx, inputs...)
	for _, f := range failed {
		logger.Error("cannot add input", pdfship.String("name", f.DisplayName), pdfship.Err(f.Err))
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d inputs could not be loaded", len(failed), len(files))
	}

	if cfg.OutputName != "" {
		eng.SetOutputName(cfg.OutputName)
	}

	loc, err := eng.Merge(ctx)
	if err != nil {
		return err
	}
	fmt.Println(loc)
	return nil
}

// inboxCollector funnels settled inbox files into the engine one at a time.
// The watcher fires deliveries on per-file timer goroutines, but session
// mutations require caller serialization; the mutex provides it, and close
// fences the shutdown merge against an in-flight delivery.
type inboxCollector struct {
	eng    *pdfship.Engine
	logger pdfship.Logger

	mu     sync.Mutex
	closed bool
}

func (c *inboxCollector) deliver(ctx context.Context, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	_, failed := c.eng.Add(ctx, pdfship.Input{Path: path})
	for _, f := range failed {
		c.logger.Warn("inbox file rejected", pdfship.String("name", f.DisplayName), pdfship.Err(f.Err))
	}
	if err := c.eng.SaveSession(ctx); err != nil {
		c.logger.Error("save session", pdfship.Err(err))
	}
	c.logger.Info("session updated",
		pdfship.Int("items", len(c.eng.Items())),
		pdfship.Int("total_pages", c.eng.TotalPages()),
	)
	for _, v := range c.eng.Violations() {
		c.logger.Warn("session not mergeable yet", pdfship.String("reason", v.Reason()))
	}
}

// close waits out any in-flight delivery and turns later ones into no-ops.
func (c *inboxCollector) close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func runWatch(ctx context.Context, cfg cliconfig.Config) error {
	repo := fs.NewSessionFileRepository(cfg.StateDir)
	eng, logger, err := newEngine(cfg, pdfship.WithSessionRepository(repo))
	if err != nil {
		return err
	}
	if err := eng.RestoreSession(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if cfg.OutputName != "" {
		eng.SetOutputName(cfg.OutputName)
	}

	if err := os.MkdirAll(cfg.InboxDir, 0o755); err != nil {
		return err
	}

	coll := &inboxCollector{eng: eng, logger: logger}
	inbox := fs.NewInbox(cfg.InboxDir, cfg.SettleDelay, logger)
	err = inbox.Run(ctx, func(path string) { coll.deliver(ctx, path) })
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	coll.close()

	// Shutdown: merge what was collected, if the gate allows it.
	if vs := eng.Violations(); len(vs) > 0 {
		for _, v := range vs {
			logger.Warn("skipping merge", pdfship.String("reason", v.Reason()), pdfship.String("detail", v.Error()))
		}
		return nil
	}

	mergeCtx := context.Background()
	loc, err := eng.Merge(mergeCtx)
	if err != nil {
		return err
	}
	fmt.Println(loc)

	// Workflow complete: dispose the persisted session.
	return repo.Save(mergeCtx, domain.SessionState{})
}
