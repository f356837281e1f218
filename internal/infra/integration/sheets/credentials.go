package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// Credentials is the long-lived grant persisted by the one-time OAuth
// consent flow. Access tokens are minted from the refresh token on demand.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
}

// LoadCredentialsFile reads the token file written by the consent flow
// (historically token.json next to the binary).
func LoadCredentialsFile(path string) (*Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	if creds.RefreshToken == "" {
		return nil, fmt.Errorf("token file has no refresh_token; re-run the consent flow")
	}

	return &creds, nil
}

// TokenSource refreshes transparently and caches the current access token.
func (c *Credentials) TokenSource(ctx context.Context) oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{spreadsheetScope},
	}
	return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken})
}

// HTTPClient wraps the token source; every call fails closed when no valid
// token can be obtained.
func (c *Credentials) HTTPClient(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, c.TokenSource(ctx))
}

// CredentialError distinguishes a revoked/expired grant (operator action
// needed) from a transient network failure (may succeed on a later request).
type CredentialError struct {
	Reason string // "revoked" or "transient"
	Err    error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("sheets credential error (%s): %v", e.Reason, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}
