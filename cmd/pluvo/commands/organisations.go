package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// NewOrganisationsCommand creates the organisations command group
func NewOrganisationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"org", "organisations"},
		Short:   "Manage organisations",
		Long:    "Create and update Pluvo organisations",
	}

	cmd.AddCommand(newOrganisationsSetCommand())

	return cmd
}

func newOrganisationsSetCommand() *cobra.Command {
	var (
		organisationID int
		name           string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update an organisation",
		Long:  "Create an organisation, or update it when --id is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			organisation := &pluvo.Organisation{
				ID:   organisationID,
				Name: name,
			}

			result, err := client.Organisations().Set(ctx, organisation)
			if err != nil {
				return fmt.Errorf("failed to set organisation: %w", err)
			}

			fmt.Printf("Organisation '%s' saved with ID %d\n", result.Name, result.ID)

			return nil
		},
	}

	cmd.Flags().IntVar(&organisationID, "id", 0, "organisation ID (update when set)")
	cmd.Flags().StringVar(&name, "name", "", "organisation name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
