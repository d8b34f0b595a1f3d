package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wendbv/pluvo-go/internal/http"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// UsersClient implements pluvo.UsersClient.
type UsersClient struct {
	httpClient *http.Client
	pageSize   int
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client, pageSize int) *UsersClient {
	return &UsersClient{httpClient: httpClient, pageSize: pageSize}
}

// Get implements pluvo.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int) (*pluvo.User, error) {
	path := "/user/" + strconv.Itoa(userID) + "/"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user pluvo.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// List implements pluvo.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *pluvo.ListParams) (*pluvo.Sequence[pluvo.User], error) {
	return pluvo.NewSequence(ctx, c.pageSize, params, listPageFunc[pluvo.User](c.httpClient, "/user/", params))
}

// Create implements pluvo.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, user *pluvo.User) (*pluvo.User, error) {
	resp, err := c.httpClient.Post(ctx, "/user/", user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var created pluvo.User

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &created, nil
}

// Update implements pluvo.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID int, user *pluvo.User) (*pluvo.User, error) {
	path := "/user/" + strconv.Itoa(userID) + "/"

	resp, err := c.httpClient.Put(ctx, path, user)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var updated pluvo.User

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &updated, nil
}

// Set implements pluvo.UsersClient.Set.
func (c *UsersClient) Set(ctx context.Context, user *pluvo.User) (*pluvo.User, error) {
	if user.ID == 0 {
		return c.Create(ctx, user)
	}

	return c.Update(ctx, user.ID, user)
}

// CourseToken implements pluvo.UsersClient.CourseToken.
func (c *UsersClient) CourseToken(ctx context.Context, userID, courseID int, tokenType pluvo.TokenType) (*pluvo.CourseToken, error) {
	path := fmt.Sprintf("/user/%d/course/%d/token/%s/", userID, courseID, tokenType)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting course token: %w", err)
	}

	var token pluvo.CourseToken

	err = json.Unmarshal(resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing course token response: %w", err)
	}

	return &token, nil
}
