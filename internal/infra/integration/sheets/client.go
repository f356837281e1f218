package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://sheets.googleapis.com"

// Client appends audit rows to a spreadsheet through the Sheets v4 values
// API. The http.Client is expected to carry the OAuth transport; tests
// inject a plain client pointed at a stub server.
type Client struct {
	baseURL string
	sheetID string
	http    *http.Client
}

func NewClient(httpClient *http.Client, baseURL, sheetID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		sheetID: sheetID,
		http:    httpClient,
	}
}

// AppendRow appends one row at the end of the tab. Duplicate submissions
// produce duplicate rows; the sheet is an append-only log, not a set.
func (c *Client) AppendRow(ctx context.Context, tab string, values []string) error {
	rng := url.PathEscape(tab + "!A1")
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		c.baseURL, c.sheetID, rng)

	payload := appendRequest{Values: [][]string{values}}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal append request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sheets append rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var response appendResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode append response: %w", err)
	}
	if response.Updates.UpdatedRows < 1 {
		return fmt.Errorf("sheets append reported no updated rows")
	}

	return nil
}

// ReadRows returns every row currently in the tab, values folded to strings.
func (c *Client) ReadRows(ctx context.Context, tab string) ([][]string, error) {
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s", c.baseURL, c.sheetID, url.PathEscape(tab))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sheets read rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var response valueRange
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode value range: %w", err)
	}

	rows := make([][]string, 0, len(response.Values))
	for _, raw := range response.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// classifyTransportError surfaces a typed CredentialError when the OAuth
// transport could not mint a token, so callers can tell a revoked grant
// from a flaky network.
func classifyTransportError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.ErrorCode == "invalid_grant" {
			return &CredentialError{Reason: "revoked", Err: err}
		}
		return &CredentialError{Reason: "transient", Err: err}
	}
	return err
}
