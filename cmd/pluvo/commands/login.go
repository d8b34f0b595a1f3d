package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
	"github.com/wendbv/pluvo-go/pkg/pluvoclient"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiURL       string
		token        string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Pluvo",
		Long:  "Store credentials for the Pluvo API and verify them",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API URL
			if apiURL == "" {
				apiURL = viper.GetString("api")
			}

			if apiURL == "" {
				apiURL = pluvo.DefaultAPIURL
			}

			config := &pluvo.Config{APIURL: apiURL}

			// Determine authentication method
			switch {
			case token != "":
				config.Token = token
			case clientID != "":
				if clientSecret == "" {
					fmt.Print("Client secret: ")

					byteSecret, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read client secret: %w", err)
					}

					clientSecret = string(byteSecret)

					fmt.Println()
				}

				config.ClientID = clientID
				config.ClientSecret = clientSecret
			default:
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Client ID (leave empty for token auth): ")

				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)

				if clientID != "" {
					fmt.Print("Client secret: ")

					byteSecret, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read client secret: %w", err)
					}

					fmt.Println()

					config.ClientID = clientID
					config.ClientSecret = string(byteSecret)
				} else {
					fmt.Print("Token: ")

					byteToken, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read token: %w", err)
					}

					fmt.Println()

					config.Token = string(byteToken)
				}
			}

			// Create client and verify the credentials work
			ctx := context.Background()

			client, err := pluvoclient.New(ctx, config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			apiVersion, err := client.GetVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			// Persist the working configuration
			viper.Set("api", config.APIURL)
			viper.Set("token", config.Token)
			viper.Set("client_id", config.ClientID)
			viper.Set("client_secret", config.ClientSecret)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s (API version %s)\n", config.APIURL, apiVersion.Version)

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&apiURL, "api", "a", "", "API base URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "authentication token")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Pluvo",
		Long:  "Clear stored authentication credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Clear authentication data
			viper.Set("token", "")
			viper.Set("client_id", "")
			viper.Set("client_secret", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
