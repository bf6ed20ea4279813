package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/candlekeep/candlekeep/gen/ent"
	"github.com/candlekeep/candlekeep/internal/common"
	"github.com/candlekeep/candlekeep/internal/fsops"
	repo "github.com/candlekeep/candlekeep/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:   "candlekeep",
	Short: "Personal document library",
	Long: `CandleKeep ingests PDF and markdown documents into a personal
library: canonical page-addressable text, bibliographic metadata,
embedded images and page-range queries.`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(initCmd)
}

// newLogger builds the CLI logger; warnings and errors only unless -v.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// libraryEnv is everything an open library session needs.
type libraryEnv struct {
	cfg    *common.Config
	paths  common.LibraryPaths
	entc   *ent.Client
	logger *slog.Logger
}

func (e *libraryEnv) close() {
	if e.entc != nil {
		_ = e.entc.Close()
	}
}

// openLibrary loads config and opens the library database.
func openLibrary(ctx context.Context) (*libraryEnv, error) {
	logger := newLogger()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	paths := common.NewLibraryPaths(cfg.Library.Root)
	if err := fsops.EnsureDir(paths.Root); err != nil {
		return nil, err
	}

	entc, _, err := repo.Open(ctx, cfg.Database, paths.DBPath, logger)
	if err != nil {
		return nil, err
	}
	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, err
	}
	return &libraryEnv{cfg: cfg, paths: paths, entc: entc, logger: logger}, nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the library layout and database",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openLibrary(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		for _, dir := range []string{env.paths.Root, env.paths.LibraryDir, env.paths.OriginalsDir, env.paths.ImagesDir} {
			if err := fsops.EnsureDir(dir); err != nil {
				return err
			}
		}
		cmd.Printf("Initialized library at %s\n", env.paths.Root)
		return nil
	},
}
