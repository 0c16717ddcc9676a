package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthenticated means the provider could not resolve the token to an
// identity: non-200 response, network failure, timeout, or an unusable
// payload. Callers surface all of these the same way (401 at /login).
var ErrUnauthenticated = errors.New("identity provider rejected the token")

// Identity is the provider's view of the end user
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client calls a Netlify-style identity service to exchange a bearer token
// for the identity it was issued to
type Client struct {
	host       string
	httpClient *http.Client
}

// NewClient creates an identity Client for the given provider host
func NewClient(host string) *Client {
	return &Client{
		host: strings.TrimRight(host, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetUser exchanges an externally issued bearer token for the identity it
// belongs to. Login is not retried here; a timeout counts as a rejection.
func (c *Client) GetUser(ctx context.Context, token string) (*Identity, error) {
	url := c.host + "/.netlify/identity/user"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnauthenticated, resp.StatusCode)
	}

	var ident Identity
	if err := json.NewDecoder(resp.Body).Decode(&ident); err != nil {
		return nil, fmt.Errorf("%w: undecodable identity payload: %v", ErrUnauthenticated, err)
	}
	if ident.ID == "" || ident.Email == "" {
		return nil, fmt.Errorf("%w: identity payload missing id or email", ErrUnauthenticated)
	}

	return &ident, nil
}
