package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hance08/bills/cmd/account"
	"github.com/hance08/bills/cmd/transaction"
	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/config"
	"github.com/hance08/bills/internal/errhandler"
	"github.com/hance08/bills/internal/logging"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *pterm.Logger

	application *app.App
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:           "bills",
		Short:         "bills is a CLI client for a personal finance tracker",
		Long:          `bills lists and manages the accounts and transactions kept by a bills backend.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			var err error
			logger, logCloser, err = logging.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Dir)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(getApp))
	rootCmd.AddCommand(transaction.NewTransactionCmd(getApp))
	rootCmd.AddCommand(NewUICmd(getApp))
	rootCmd.AddCommand(NewServeCmd(migrations))

	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		if errhandler.IsInterrupt(err) || errors.Is(err, context.Canceled) {
			pterm.Warning.Println("Operation Cancelled")
			return
		}

		pterm.Error.Println(errhandler.Capitalize(err.Error()))
		os.Exit(1)
	}
}

// getApp builds the client application on first use.
func getApp(ctx context.Context) (*app.App, error) {
	if application != nil {
		return application, nil
	}
	if cfg == nil {
		return nil, errors.New("configuration is not loaded")
	}

	a, err := app.NewApp(ctx, cfg, logger, os.Stderr)
	if err != nil {
		return nil, err
	}
	application = a
	return a, nil
}

func initConfig() error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("BILLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// setDefaults registers every key so that AutomaticEnv can override keys
// missing from the config file.
func setDefaults() {
	def := config.NewDefault()
	viper.SetDefault("server.base_url", def.Server.BaseURL)
	viper.SetDefault("server.listen", def.Server.Listen)
	viper.SetDefault("server.allowed_origins", def.Server.AllowedOrigins)
	viper.SetDefault("database.path", def.Database.Path)
	viper.SetDefault("ui.prompt", def.UI.Prompt)
	viper.SetDefault("ui.format", def.UI.Format)
	viper.SetDefault("failures.policy", def.Failures.Policy)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.dir", def.Log.Dir)
	viper.SetDefault("log.format", def.Log.Format)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
