package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/notevault/internal/client/cli"
	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/config"
	"github.com/dmitrijs2005/notevault/internal/filex"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	dbConn *sql.DB
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "notevault",
	Short: "Terminal client for the NoteVault notes service",
	Long: `NoteVault keeps your notes, grouped by category, on a NoteVault server.
Run without arguments to start the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		sl := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)}))
		slog.SetDefault(sl)
		logger = logging.NewSlogLogger(sl)

		if _, err := filex.EnsureDir(filepath.Dir(cfg.SessionDBPath)); err != nil {
			return fmt.Errorf("session directory: %w", err)
		}
		dbConn, err = client.InitDatabase(cmd.Context(), cfg.SessionDBPath)
		if err != nil {
			return fmt.Errorf("open session database: %w", err)
		}
		logger.Debug(cmd.Context(), "configuration loaded", "api", cfg.APIBaseURL, "db", cfg.SessionDBPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbConn != nil {
			_ = dbConn.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cli.NewApp(cfg, dbConn, logger).Run(cmd.Context())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, exportCmd)
}
