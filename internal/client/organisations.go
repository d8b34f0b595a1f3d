package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wendbv/pluvo-go/internal/http"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// OrganisationsClient implements pluvo.OrganisationsClient.
type OrganisationsClient struct {
	httpClient *http.Client
}

// NewOrganisationsClient creates a new organisations client.
func NewOrganisationsClient(httpClient *http.Client) *OrganisationsClient {
	return &OrganisationsClient{httpClient: httpClient}
}

// Create implements pluvo.OrganisationsClient.Create.
func (c *OrganisationsClient) Create(ctx context.Context, organisation *pluvo.Organisation) (*pluvo.Organisation, error) {
	resp, err := c.httpClient.Post(ctx, "/organisation/", organisation)
	if err != nil {
		return nil, fmt.Errorf("creating organisation: %w", err)
	}

	var created pluvo.Organisation

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing organisation response: %w", err)
	}

	return &created, nil
}

// Update implements pluvo.OrganisationsClient.Update.
func (c *OrganisationsClient) Update(ctx context.Context, organisationID int, organisation *pluvo.Organisation) (*pluvo.Organisation, error) {
	path := "/organisation/" + strconv.Itoa(organisationID) + "/"

	resp, err := c.httpClient.Put(ctx, path, organisation)
	if err != nil {
		return nil, fmt.Errorf("updating organisation: %w", err)
	}

	var updated pluvo.Organisation

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing organisation response: %w", err)
	}

	return &updated, nil
}

// Set implements pluvo.OrganisationsClient.Set.
func (c *OrganisationsClient) Set(ctx context.Context, organisation *pluvo.Organisation) (*pluvo.Organisation, error) {
	if organisation.ID == 0 {
		return c.Create(ctx, organisation)
	}

	return c.Update(ctx, organisation.ID, organisation)
}
