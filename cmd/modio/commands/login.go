package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/modio-client/internal/constants"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/fivetwenty-io/modio-client/pkg/modioclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to mod.io",
		Long: `Authenticate with mod.io through the email flow.

A five-digit security code is sent to the address; entering it here
exchanges the code for an OAuth2 access token that is saved to the
config file for subsequent commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString("api-key")
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				fmt.Println()

				apiKey = strings.TrimSpace(string(byteKey))
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			reader := bufio.NewReader(os.Stdin)

			if email == "" {
				fmt.Print("Email address: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			client, err := modioclient.New(&modio.Config{
				APIKey:          apiKey,
				TestEnvironment: viper.GetBool("test-env"),
			})
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			defer func() { _ = client.Close() }()

			ctx := cmd.Context()

			if err := client.Auth().EmailRequest(ctx, email); err != nil {
				return fmt.Errorf("requesting security code: %w", err)
			}

			fmt.Printf("A security code was sent to %s.\n", email)
			fmt.Print("Security code: ")

			code, _ := reader.ReadString('\n')
			code = strings.TrimSpace(code)

			token, err := client.Auth().EmailExchange(ctx, code)
			if err != nil {
				return fmt.Errorf("exchanging security code: %w", err)
			}

			if err := saveCredentials(apiKey, token); err != nil {
				return err
			}

			user, err := client.Me().User(ctx)
			if err != nil {
				return fmt.Errorf("verifying login: %w", err)
			}

			fmt.Printf("Logged in as %s.\n", user.Username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email address to authenticate")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from mod.io",
		Long:  "Remove the saved access token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := saveCredentials(viper.GetString("api-key"), ""); err != nil {
				return err
			}

			fmt.Println("Logged out.")

			return nil
		},
	}
}

// saveCredentials persists the API key and token to the config file.
func saveCredentials(apiKey, token string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		dir := filepath.Join(home, ".modio")
		if err := os.MkdirAll(dir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		path = filepath.Join(dir, "config.yml")
	}

	settings := map[string]string{}
	if apiKey != "" {
		settings["api-key"] = apiKey
	}

	if token != "" {
		settings["token"] = token
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
