package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pressflow-io/wpapi/internal/constants"
)

// configKeys lists the keys the config command accepts. Credential values
// are masked when displayed.
var configKeys = map[string]bool{
	"endpoint":      false,
	"output":        false,
	"max_retries":   false,
	"username":      false,
	"password":      true,
	"client_key":    false,
	"client_secret": true,
	"access_token":  true,
	"access_secret": true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage wp CLI configuration including the endpoint and credentials",
	}

	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigSetAuthCommand())

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			if _, ok := configKeys[key]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			viper.Set(key, args[1])

			return writeConfig()
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			masked, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			value := viper.GetString(key)
			if masked && value != "" {
				value = Masked
			}

			fmt.Println(value)

			return nil
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]string, 0, len(configKeys))
			for key := range configKeys {
				keys = append(keys, key)
			}

			sort.Strings(keys)

			for _, key := range keys {
				value := viper.GetString(key)
				if value == "" {
					continue
				}

				if configKeys[key] {
					value = Masked
				}

				fmt.Printf("%s: %s\n", key, value)
			}

			return nil
		},
	}
}

func newConfigSetAuthCommand() *cobra.Command {
	var (
		clientKey    string
		clientSecret string
		accessToken  string
		accessSecret string
	)

	cmd := &cobra.Command{
		Use:   "set-auth",
		Short: "Configure authentication credentials",
		Long: `Configure authentication credentials.

With the token flags, stores OAuth1 token credentials. Without them, prompts
interactively for a username and password for basic authentication.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientKey != "" || clientSecret != "" || accessToken != "" || accessSecret != "" {
				viper.Set("client_key", clientKey)
				viper.Set("client_secret", clientSecret)
				viper.Set("access_token", accessToken)
				viper.Set("access_secret", accessSecret)
				viper.Set("username", "")
				viper.Set("password", "")

				return writeConfig()
			}

			reader := bufio.NewReader(os.Stdin)
			fmt.Print("Username: ")

			username, _ := reader.ReadString('\n')
			username = strings.TrimSpace(username)

			fmt.Print("Password: ")

			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			fmt.Println()

			viper.Set("username", username)
			viper.Set("password", string(bytePassword))
			viper.Set("client_key", "")
			viper.Set("client_secret", "")
			viper.Set("access_token", "")
			viper.Set("access_secret", "")

			return writeConfig()
		},
	}

	cmd.Flags().StringVar(&clientKey, "client-key", "", "OAuth1 client key")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth1 client secret")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth1 access token")
	cmd.Flags().StringVar(&accessSecret, "access-secret", "", "OAuth1 access secret")

	return cmd
}

// writeConfig persists the current viper state, creating the default config
// file when none exists yet.
func writeConfig() error {
	if viper.ConfigFileUsed() != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".wp")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return os.Chmod(path, constants.ConfigFilePerm)
}
