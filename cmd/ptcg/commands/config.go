package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tcgkit-io/ptcg/internal/constants"
)

// CLIConfig is the on-disk CLI configuration.
type CLIConfig struct {
	APIKey  string `yaml:"api-key,omitempty"`
	Output  string `yaml:"output,omitempty"`
	BaseURL string `yaml:"base-url,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the ptcg CLI configuration stored in $HOME/.ptcg/config.yml",
	}

	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [API_KEY]",
		Short: "Store the API key",
		Long:  "Store the API key in the config file; prompts without echo when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) > 0 {
				apiKey = args[0]
			} else {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = string(keyBytes)
			}

			if apiKey == "" {
				return constants.ErrNoAPIKeyConfigured
			}

			config := loadCLIConfig()
			config.APIKey = apiKey

			err := saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("API key saved")

			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			if config.APIKey != "" {
				config.APIKey = constants.MaskedSecret
			}

			return OutputYAML(config)
		},
	}
}

// ValidateConfigPath rejects unsafe or missing user-supplied config paths.
func ValidateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if filepath.IsAbs(path) {
		if cleanPath != path {
			return constants.ErrDirectoryTraversalDetected
		}
	} else if strings.HasPrefix(cleanPath, "..") {
		return constants.ErrDirectoryTraversalDetected
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("%w: %s", constants.ErrConfigNotFound, path)
	}

	if !info.Mode().IsRegular() {
		return constants.ErrNotRegularFile
	}

	return nil
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".ptcg", "config.yml"), nil
}

// loadCLIConfig reads the config file, returning an empty config on any
// failure so commands can proceed with defaults.
func loadCLIConfig() *CLIConfig {
	config := &CLIConfig{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveCLIConfig(config *CLIConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// Make the stored key visible to the rest of this invocation.
	viper.SetDefault("api-key", config.APIKey)

	return nil
}
