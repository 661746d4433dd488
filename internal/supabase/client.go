package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// Client wraps the hosted Supabase project client. Auth is fully delegated:
// the dashboard only validates tokens and introspects the signed-in user.
type Client struct {
	Supabase *supabase.Client
}

func NewClient(supabaseURL, publishableKey string) (*Client, error) {
	client, err := supabase.NewClient(supabaseURL, publishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{Supabase: client}, nil
}

// SessionUser resolves the access token to the Supabase user it belongs to.
type SessionUser struct {
	ID    string
	Email string
	Role  string
}

func (c *Client) GetSessionUser(accessToken string) (*SessionUser, error) {
	resp, err := c.Supabase.Auth.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to get session user: %w", err)
	}

	return &SessionUser{
		ID:    resp.ID.String(),
		Email: resp.Email,
		Role:  resp.Role,
	}, nil
}
