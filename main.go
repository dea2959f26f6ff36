package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sanskrit-vocab-import/common"
	"sanskrit-vocab-import/convert"
	"sanskrit-vocab-import/migrate"
	"sanskrit-vocab-import/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "vocab-import",
		Short:         "Convert and load Sanskrit vocabulary spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	loadConfig := func() (*common.Config, *zap.SugaredLogger, error) {
		cfg, err := common.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		return cfg, common.Logger(), nil
	}

	openStore := func(cfg *common.Config) (*migrate.Store, *gorm.DB, error) {
		db, err := common.Init(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return migrate.NewStore(db), db, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "convert",
		Short: "Convert the source spreadsheets into normalized CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			_, err = convert.ConvertAll(cfg, log)
			return err
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "import",
		Short: "Load the normalized CSV files into the datastore (one transaction)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			store, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			return runRecorded(cmd.Context(), store, common.RunKindImport, func(ctx context.Context, run *common.MigrationRun) error {
				summary, err := migrate.NewRunner(store, cfg, log).Import(ctx)
				run.ApplySummary(summary)
				return err
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete every entry in the vocabulary collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			store, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			return runRecorded(cmd.Context(), store, common.RunKindCleanup, func(ctx context.Context, run *common.MigrationRun) error {
				deleted, err := migrate.NewRunner(store, cfg, log).Cleanup(ctx)
				run.DeletedCount = deleted
				return err
			})
		},
	})

	var migrateOnStart bool
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the hosting server, optionally importing on start",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			store, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			runner := migrate.NewRunner(store, cfg, log)

			if migrateOnStart {
				err := runRecorded(cmd.Context(), store, common.RunKindImport, func(ctx context.Context, run *common.MigrationRun) error {
					summary, err := runner.Import(ctx)
					run.ApplySummary(summary)
					return err
				})
				if err != nil {
					return err
				}
			}

			srv := server.New(cfg, runner, store, store, log)
			log.Infow("server starting", "addr", cfg.ListenAddr)
			return srv.Router().Run(cfg.ListenAddr)
		},
	}
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate-on-start", false, "run the import pass before serving")
	root.AddCommand(serveCmd)

	var ttl time.Duration
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for the guarded endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			token, err := server.SignAdminToken(cfg.AdminSecret, ttl)
			if err != nil {
				return err
			}
			cmd.Println(token)
			return nil
		},
	}
	tokenCmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	root.AddCommand(tokenCmd)

	return root
}

// runRecorded wraps one pass invocation with a persisted MigrationRun row.
// The run record is written even when the pass itself failed and rolled back.
func runRecorded(ctx context.Context, store *migrate.Store, kind string, pass func(ctx context.Context, run *common.MigrationRun) error) error {
	run := common.NewMigrationRun(kind)
	err := pass(ctx, run)
	run.Finish(err)

	if recErr := store.RecordRun(ctx, run); recErr != nil {
		common.Logger().Errorw("failed to record run", "error", recErr)
	}
	return err
}
