package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todomatic/internal/config"
	"github.com/sandeepkv93/todomatic/internal/logging"
	"github.com/sandeepkv93/todomatic/internal/storage"
	"github.com/sandeepkv93/todomatic/internal/store"
	"github.com/sandeepkv93/todomatic/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	configPath string
	storage    string
	backend    string
	logFile    string
}

// app bundles what every subcommand needs once flags are resolved.
type app struct {
	cfg       config.RuntimeConfig
	logger    *zap.Logger
	kv        storage.KV
	snapshots *storage.Snapshots
}

func (a *app) Close() {
	_ = a.kv.Close()
	_ = a.logger.Sync()
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "todomatic",
		Short:         "TodoMatic - a small task list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(flags)
			if err != nil {
				return err
			}
			defer a.Close()
			return runTUI(a)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	root.PersistentFlags().StringVar(&flags.storage, "storage", "", "storage path override")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: sqlite or file")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to this file")

	root.AddCommand(
		newListCmd(flags),
		newAddCmd(flags),
		newToggleCmd(flags),
		newRemoveCmd(flags),
		newRenameCmd(flags),
		newClearCompletedCmd(flags),
	)
	return root
}

func resolveConfig(flags *rootFlags) (config.RuntimeConfig, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.storage != "" {
		cfg.StoragePath = flags.storage
	}
	if flags.backend != "" {
		cfg.StorageBackend = flags.backend
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	return cfg, nil
}

func openApp(flags *rootFlags) (*app, error) {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	backend, err := storage.ParseBackend(cfg.StorageBackend)
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(backend, cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Info("storage opened", zap.String("backend", string(backend)), zap.String("path", cfg.StoragePath))
	return &app{cfg: cfg, logger: logger, kv: kv, snapshots: storage.NewSnapshots(kv)}, nil
}

func runTUI(a *app) error {
	s := store.New()
	unsubscribe := s.Subscribe(func(snap store.Snapshot) {
		c := snap.Counts()
		a.logger.Debug("store changed",
			zap.Int("version", snap.Version),
			zap.String("filter", string(snap.Filter)),
			zap.Int("total", c.Total),
			zap.Int("active", c.Active),
		)
	})
	defer unsubscribe()

	m := update.NewModelWithDeps(update.Deps{
		Store:     s,
		Snapshots: a.snapshots,
		Logger:    a.logger,
		Config:    a.cfg,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// loadStore reads the saved list into a fresh store. Corrupt data is
// reported on w and treated as an empty list.
func loadStore(ctx context.Context, a *app, w io.Writer) (*store.Store, error) {
	tasks, err := a.snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, err
		}
		a.logger.Warn("discarding unreadable saved tasks", zap.Error(err))
		fmt.Fprintln(w, "warning: saved tasks were unreadable; starting with an empty list")
	}
	s := store.New()
	s.Replace(tasks)
	return s, nil
}
