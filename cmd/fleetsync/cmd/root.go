package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/planequery/fleetsync/internal/config"
	"github.com/planequery/fleetsync/pkg/logging"
)

var (
	configFile string
	catalogDir string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fleetsync",
	Short: "Airline fleet catalog sync",
	Long: `Fleetsync maintains versioned per-airline aircraft catalogs sourced
from external fleet-tracking APIs. Each update reconciles a fresh fleet
snapshot against the stored catalog, records field-level changes as
provenance-tagged history entries, and derives fleet reports from the
result.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.fleetsync.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", "", "directory holding catalog documents (default \"catalogs\")")

	if err := viper.BindPFlag(config.KeyCatalogDir, rootCmd.PersistentFlags().Lookup("catalog-dir")); err != nil {
		panic(fmt.Sprintf("Failed to bind catalog-dir flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fleetsync")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		logging.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	}
}

// loadEnvFiles loads .env files from the working directory when present.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err == nil {
			if err := godotenv.Load(name); err != nil {
				logging.Warn().Err(err).Str("file", name).Msg("Failed to load env file")
			}
		}
	}
}
