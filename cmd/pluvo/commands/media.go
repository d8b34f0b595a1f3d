package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewMediaCommand creates the media command group
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media",
		Long:  "Request upload grants for media files",
	}

	cmd.AddCommand(newMediaUploadTokenCommand())

	return cmd
}

func newMediaUploadTokenCommand() *cobra.Command {
	var mediaType string

	cmd := &cobra.Command{
		Use:   "upload-token FILENAME",
		Short: "Get an S3 upload token",
		Long:  "Get a signed S3 upload token for a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			token, err := client.Media().S3UploadToken(ctx, args[0], mediaType)
			if err != nil {
				return fmt.Errorf("failed to get upload token: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, token)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, token)
			default:
				fmt.Println(token.Token)

				if token.URL != "" {
					fmt.Println(token.URL)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mediaType, "media-type", "", "media type of the file, e.g. video or image")
	_ = cmd.MarkFlagRequired("media-type")

	return cmd
}
