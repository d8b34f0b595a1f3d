package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, get, and set Pluvo users, and issue course tokens",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersSetCommand())
	cmd.AddCommand(newUsersTokenCommand())

	return cmd
}

//nolint:funlen // Command setup with many filter flags
func newUsersListCommand() *cobra.Command {
	var (
		all    bool
		limit  int
		offset int

		name              string
		creationDateFrom  string
		creationDateTo    string
		createdCourseID   int
		followingCourseID int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List users, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := pluvo.NewListParams().WithLimit(limit).WithOffset(offset)

			setFilter(params, "name", name)
			setFilter(params, "creation_date_from", creationDateFrom)
			setFilter(params, "creation_date_to", creationDateTo)
			setIntFilter(params, "created_course_id", createdCourseID)
			setIntFilter(params, "following_course_id", followingCourseID)

			seq, err := client.Users().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			users := seq.Items()
			if all {
				users, err = seq.All()
				if err != nil {
					return fmt.Errorf("failed to fetch users: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, users)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, users)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "Created")

				for _, user := range users {
					_ = table.Append(
						strconv.Itoa(user.ID),
						user.Name,
						user.Email,
						formatTimePtr(user.CreationDate),
					)
				}

				fmt.Printf("Showing %d of %d users:\n\n", len(users), seq.Len())

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if len(users) < seq.Len() {
					fmt.Println("\nUse --all to fetch the remaining pages")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages instead of the first")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of users to fetch")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of users to skip")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&creationDateFrom, "creation-date-from", "", "filter by creation date lower bound")
	cmd.Flags().StringVar(&creationDateTo, "creation-date-to", "", "filter by creation date upper bound")
	cmd.Flags().IntVar(&createdCourseID, "created-course-id", 0, "filter by created course ID")
	cmd.Flags().IntVar(&followingCourseID, "following-course-id", 0, "filter by followed course ID")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get a user",
		Long:  "Get a single user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", args[0], err)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			user, err := client.Users().Get(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, user)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, user)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.Itoa(user.ID))
				_ = table.Append("Name", user.Name)
				_ = table.Append("Email", user.Email)
				_ = table.Append("Created", formatTimePtr(user.CreationDate))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newUsersSetCommand() *cobra.Command {
	var (
		userID int
		name   string
		email  string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a user",
		Long:  "Create a user, or update it when --id is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			user := &pluvo.User{
				ID:    userID,
				Name:  name,
				Email: email,
			}

			result, err := client.Users().Set(ctx, user)
			if err != nil {
				return fmt.Errorf("failed to set user: %w", err)
			}

			fmt.Printf("User '%s' saved with ID %d\n", result.Name, result.ID)

			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "id", 0, "user ID (update when set)")
	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUsersTokenCommand() *cobra.Command {
	var tokenType string

	cmd := &cobra.Command{
		Use:   "token USER_ID COURSE_ID",
		Short: "Issue a course token for a user",
		Long:  "Issue a token granting a user access to a course as student or manager",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", args[0], err)
			}

			courseID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid course ID %q: %w", args[1], err)
			}

			if tokenType != string(pluvo.TokenTypeStudent) && tokenType != string(pluvo.TokenTypeManager) {
				return fmt.Errorf("%w: %q", errInvalidTokenType, tokenType)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			token, err := client.Users().CourseToken(ctx, userID, courseID, pluvo.TokenType(tokenType))
			if err != nil {
				return fmt.Errorf("failed to get course token: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, token)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, token)
			default:
				fmt.Println(token.Token)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&tokenType, "type", string(pluvo.TokenTypeStudent), "token type (student or manager)")

	return cmd
}
