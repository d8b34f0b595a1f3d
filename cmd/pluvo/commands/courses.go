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
	"gopkg.in/yaml.v3"
)

// NewCoursesCommand creates the courses command group
func NewCoursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"course"},
		Short:   "Manage courses",
		Long:    "List, get, and set Pluvo courses",
	}

	cmd.AddCommand(newCoursesListCommand())
	cmd.AddCommand(newCoursesGetCommand())
	cmd.AddCommand(newCoursesSetCommand())

	return cmd
}

//nolint:funlen // Command setup with many filter flags
func newCoursesListCommand() *cobra.Command {
	var (
		all    bool
		limit  int
		offset int

		title            string
		description      string
		publishedFrom    string
		publishedTo      string
		studentID        int
		creatorID        int
		creationDateFrom string
		creationDateTo   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Long:  "List courses, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := pluvo.NewListParams().WithLimit(limit).WithOffset(offset)

			setFilter(params, "title", title)
			setFilter(params, "description", description)
			setFilter(params, "published_from", publishedFrom)
			setFilter(params, "published_to", publishedTo)
			setFilter(params, "creation_date_from", creationDateFrom)
			setFilter(params, "creation_date_to", creationDateTo)
			setIntFilter(params, "student_id", studentID)
			setIntFilter(params, "creator_id", creatorID)

			seq, err := client.Courses().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}

			courses := seq.Items()
			if all {
				courses, err = seq.All()
				if err != nil {
					return fmt.Errorf("failed to fetch courses: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, courses)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, courses)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "Creator", "Published From", "Published To")

				for _, course := range courses {
					_ = table.Append(
						strconv.Itoa(course.ID),
						course.Title,
						strconv.Itoa(course.CreatorID),
						formatTimePtr(course.PublishedFrom),
						formatTimePtr(course.PublishedTo),
					)
				}

				fmt.Printf("Showing %d of %d courses:\n\n", len(courses), seq.Len())

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if len(courses) < seq.Len() {
					fmt.Println("\nUse --all to fetch the remaining pages")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages instead of the first")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of courses to fetch")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of courses to skip")
	cmd.Flags().StringVar(&title, "title", "", "filter by title")
	cmd.Flags().StringVar(&description, "description", "", "filter by description")
	cmd.Flags().StringVar(&publishedFrom, "published-from", "", "filter by publication start date")
	cmd.Flags().StringVar(&publishedTo, "published-to", "", "filter by publication end date")
	cmd.Flags().IntVar(&studentID, "student-id", 0, "filter by enrolled student ID")
	cmd.Flags().IntVar(&creatorID, "creator-id", 0, "filter by creator ID")
	cmd.Flags().StringVar(&creationDateFrom, "creation-date-from", "", "filter by creation date lower bound")
	cmd.Flags().StringVar(&creationDateTo, "creation-date-to", "", "filter by creation date upper bound")

	return cmd
}

func newCoursesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COURSE_ID",
		Short: "Get a course",
		Long:  "Get a single course by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid course ID %q: %w", args[0], err)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			course, err := client.Courses().Get(ctx, courseID)
			if err != nil {
				return fmt.Errorf("failed to get course: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(os.Stdout, course)
			case OutputFormatYAML:
				return encodeYAML(os.Stdout, course)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.Itoa(course.ID))
				_ = table.Append("Title", course.Title)
				_ = table.Append("Description", course.Description)
				_ = table.Append("Creator", strconv.Itoa(course.CreatorID))
				_ = table.Append("Published From", formatTimePtr(course.PublishedFrom))
				_ = table.Append("Published To", formatTimePtr(course.PublishedTo))
				_ = table.Append("Created", formatTimePtr(course.CreationDate))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

//nolint:funlen // Flag handling and file input
func newCoursesSetCommand() *cobra.Command {
	var (
		courseID    int
		title       string
		description string
		fromFile    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a course",
		Long:  "Create a course, or update it when --id is given. With --from-file the course is read from a YAML file and flags override its fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			course := &pluvo.Course{}

			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("failed to read course file: %w", err)
				}

				if err := yaml.Unmarshal(data, course); err != nil {
					return fmt.Errorf("failed to parse course file: %w", err)
				}
			}

			if courseID != 0 {
				course.ID = courseID
			}

			if title != "" {
				course.Title = title
			}

			if description != "" {
				course.Description = description
			}

			if course.Title == "" {
				return errTitleRequired
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			result, err := client.Courses().Set(ctx, course)
			if err != nil {
				return fmt.Errorf("failed to set course: %w", err)
			}

			fmt.Printf("Course '%s' saved with ID %d\n", result.Title, result.ID)

			return nil
		},
	}

	cmd.Flags().IntVar(&courseID, "id", 0, "course ID (update when set)")
	cmd.Flags().StringVar(&title, "title", "", "course title")
	cmd.Flags().StringVar(&description, "description", "", "course description")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "YAML file holding the course")

	return cmd
}

// setFilter adds a filter when the value is non-empty.
func setFilter(params *pluvo.ListParams, key, value string) {
	if value != "" {
		params.WithFilter(key, value)
	}
}

// setIntFilter adds a numeric filter when the value is non-zero.
func setIntFilter(params *pluvo.ListParams, key string, value int) {
	if value != 0 {
		params.WithFilter(key, strconv.Itoa(value))
	}
}
