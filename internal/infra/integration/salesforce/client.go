package salesforce

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

const DefaultEndpoint = "https://webto.salesforce.com/servlet/servlet.WebToLead?encoding=UTF-8"

// Client submits leads through the Web-to-Lead form endpoint. Known
// limitation: Salesforce answers 200 even when lead validation fails
// server-side (it redirects to retURL either way), so a nil error only
// means the form was accepted, not that a lead exists.
type Client struct {
	endpoint string
	orgID    string
	retURL   string
	http     *http.Client
}

func NewClient(orgID, retURL string) *Client {
	return NewClientWithEndpoint(DefaultEndpoint, orgID, retURL)
}

func NewClientWithEndpoint(endpoint, orgID, retURL string) *Client {
	return &Client{
		endpoint: endpoint,
		orgID:    orgID,
		retURL:   retURL,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SubmitLead(ctx context.Context, lead *entity.Lead) error {
	if c.orgID == "" {
		log.Println("⚠️ Salesforce: organization ID not configured, skipping lead submit")
		return fmt.Errorf("salesforce not configured")
	}

	form := c.buildForm(lead)

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("web-to-lead request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("web-to-lead rejected (status %d): %s", resp.StatusCode, string(body))
	}

	log.Printf("✅ Salesforce: lead submitted for %s (%s)", lead.FullName(), lead.Source)
	return nil
}

func (c *Client) buildForm(lead *entity.Lead) url.Values {
	form := url.Values{}
	form.Set("oid", c.orgID)
	form.Set("retURL", c.retURL)
	form.Set("lead_source", lead.Source)

	// Enquiries carry a single name; Web-to-Lead requires last_name.
	if lead.LastName == "" {
		form.Set("last_name", lead.FullName())
	} else {
		form.Set("first_name", lead.FirstName)
		form.Set("last_name", lead.LastName)
	}

	form.Set("email", lead.Email)
	setIfPresent(form, "phone", lead.Phone)
	setIfPresent(form, "company", lead.Company)

	setIfPresent(form, fieldProject, lead.Project)
	setIfPresent(form, fieldMessage, lead.Message)
	setIfPresent(form, fieldLocation, lead.Location)
	setIfPresent(form, fieldSampleRequest, lead.RequestSample)
	setIfPresent(form, fieldQuantity, lead.Quantity)
	setIfPresent(form, fieldProducts, strings.Join(lead.ProductIDStrings(), ","))
	form.Set(fieldTimestamp, lead.Timestamp())

	return form
}

func setIfPresent(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}
