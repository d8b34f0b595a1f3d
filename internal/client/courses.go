package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wendbv/pluvo-go/internal/http"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// CoursesClient implements pluvo.CoursesClient.
type CoursesClient struct {
	httpClient *http.Client
	pageSize   int
}

// NewCoursesClient creates a new courses client.
func NewCoursesClient(httpClient *http.Client, pageSize int) *CoursesClient {
	return &CoursesClient{httpClient: httpClient, pageSize: pageSize}
}

// Get implements pluvo.CoursesClient.Get.
func (c *CoursesClient) Get(ctx context.Context, courseID int) (*pluvo.Course, error) {
	path := "/course/" + strconv.Itoa(courseID) + "/"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting course: %w", err)
	}

	var course pluvo.Course

	err = json.Unmarshal(resp.Body, &course)
	if err != nil {
		return nil, fmt.Errorf("parsing course response: %w", err)
	}

	return &course, nil
}

// List implements pluvo.CoursesClient.List.
func (c *CoursesClient) List(ctx context.Context, params *pluvo.ListParams) (*pluvo.Sequence[pluvo.Course], error) {
	return pluvo.NewSequence(ctx, c.pageSize, params, listPageFunc[pluvo.Course](c.httpClient, "/course/", params))
}

// Create implements pluvo.CoursesClient.Create.
func (c *CoursesClient) Create(ctx context.Context, course *pluvo.Course) (*pluvo.Course, error) {
	resp, err := c.httpClient.Post(ctx, "/course/", course)
	if err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}

	var created pluvo.Course

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing course response: %w", err)
	}

	return &created, nil
}

// Update implements pluvo.CoursesClient.Update.
func (c *CoursesClient) Update(ctx context.Context, courseID int, course *pluvo.Course) (*pluvo.Course, error) {
	path := "/course/" + strconv.Itoa(courseID) + "/"

	resp, err := c.httpClient.Put(ctx, path, course)
	if err != nil {
		return nil, fmt.Errorf("updating course: %w", err)
	}

	var updated pluvo.Course

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing course response: %w", err)
	}

	return &updated, nil
}

// Set implements pluvo.CoursesClient.Set.
func (c *CoursesClient) Set(ctx context.Context, course *pluvo.Course) (*pluvo.Course, error) {
	if course.ID == 0 {
		return c.Create(ctx, course)
	}

	return c.Update(ctx, course.ID, course)
}
