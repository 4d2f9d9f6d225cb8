package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tcgkit-io/ptcg/cmd/ptcg/commands"
	"github.com/tcgkit-io/ptcg/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ptcg",
	Short: "Pokémon TCG API v2 CLI",
	Long: `A command-line interface for the Pokémon TCG catalog API.

Look up cards and sets by identifier, search them with filter expressions,
and list the energy type, supertype, subtype, and rarity catalogs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.ptcg/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "API key (default from config or POKEMONTCG_API_KEY)")
	rootCmd.PersistentFlags().String("output", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	viper.BindPFlag("api-key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewCardsCommand())
	rootCmd.AddCommand(commands.NewSetsCommand())
	rootCmd.AddCommand(commands.NewTypesCommand())
	rootCmd.AddCommand(commands.NewSupertypesCommand())
	rootCmd.AddCommand(commands.NewSubtypesCommand())
	rootCmd.AddCommand(commands.NewRaritiesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		if err := commands.ValidateConfigPath(cfgFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.ptcg/config.yml
		configDir := filepath.Join(home, ".ptcg")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("PTCG")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
