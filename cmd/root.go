package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:           "vocaquiz",
	Short:         "Vocabulary quiz backend and batch loader",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		if err := config.Prepare(v); err != nil {
			return err
		}
		s, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		settings = s
		config.Init(s.LogLevel, s.LogFormat)
		return nil
	},
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		config.Logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("database-dsn", "", "PostgreSQL DSN (env DATABASE_DSN)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: json or text (env LOG_FORMAT)")

	bindFlagToViper("database_dsn", rootCmd.PersistentFlags().Lookup("database-dsn"))
	bindFlagToViper("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

// openDB connects and migrates. The caller owns the returned pool.
func openDB(ctx context.Context) (*gorm.DB, error) {
	db, err := config.Connect(ctx, settings.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := vocab.Migrate(db); err != nil {
		config.Close(db)
		return nil, err
	}
	return db, nil
}
