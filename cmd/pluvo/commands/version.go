package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version information about the Pluvo CLI and, with --remote, the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version    string `json:"version"               yaml:"version"`
				Commit     string `json:"commit"                yaml:"commit"`
				Built      string `json:"built"                 yaml:"built"`
				APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			if remote {
				ctx := context.Background()

				client, err := CreateClient(ctx)
				if err != nil {
					return err
				}

				apiVersion, err := client.GetVersion(ctx)
				if err != nil {
					return fmt.Errorf("failed to get API version: %w", err)
				}

				versionInfo.APIVersion = apiVersion.Version
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, versionInfo)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, versionInfo)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)

				if versionInfo.APIVersion != "" {
					_ = table.Append("API Version", versionInfo.APIVersion)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "also fetch the Pluvo API version")

	return cmd
}
