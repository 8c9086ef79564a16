// Package api is the HTTP client for the locshare server. It mirrors the
// server's JSON contract and converts error bodies back into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// User is a user as returned by the server.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

// Location is a location as returned by the server.
type Location struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	OwnerID int64  `json:"owner_id"`
}

// Access is a grant as returned by the server.
type Access struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"location_id"`
	UserID     int64  `json:"user_id"`
	Level      string `json:"level"`
}

// VisibleLocations groups the locations a user can see by how they see them.
type VisibleLocations struct {
	Owned []Location `json:"owned"`
	Admin []Location `json:"admin"`
	Read  []Location `json:"read"`
}

type loginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIError is a failed response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to a locshare server. Token is set after a successful Login
// and sent as a bearer token on every subsequent request.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// HasToken reports whether a bearer token is installed.
func (c *Client) HasToken() bool {
	return c.token != ""
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, name, login string, password []byte) (*User, error) {
	req := map[string]string{"name": name, "login": login, "password": string(password)}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, login string, password []byte) (*User, error) {
	req := map[string]string{"login": login, "password": string(password)}
	var result loginResult
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result.User, nil
}

func (c *Client) Locations(ctx context.Context) (*VisibleLocations, error) {
	var visible VisibleLocations
	if err := c.do(ctx, http.MethodGet, "/api/locations", nil, &visible); err != nil {
		return nil, err
	}
	return &visible, nil
}

func (c *Client) AddLocation(ctx context.Context, name, address string) (*Location, error) {
	req := map[string]string{"name": name, "address": address}
	var location Location
	if err := c.do(ctx, http.MethodPost, "/api/locations", req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) LocationMembers(ctx context.Context, locationID int64) ([]User, error) {
	var members []User
	path := fmt.Sprintf("/api/locations/%d/users", locationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) ShareCandidates(ctx context.Context, targetID int64) ([]Location, error) {
	var candidates []Location
	path := fmt.Sprintf("/api/users/%d/share-candidates", targetID)
	if err := c.do(ctx, http.MethodGet, path, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (c *Client) Share(ctx context.Context, locationID, userID int64, level string) (*Access, error) {
	req := map[string]any{"location_id": locationID, "user_id": userID, "level": level}
	var access Access
	if err := c.do(ctx, http.MethodPost, "/api/locations/share", req, &access); err != nil {
		return nil, err
	}
	return &access, nil
}

func (c *Client) ChangeAccess(ctx context.Context, locationID, userID int64) (*Access, error) {
	req := map[string]any{"location_id": locationID, "user_id": userID}
	var access Access
	if err := c.do(ctx, http.MethodPut, "/api/locations/access", req, &access); err != nil {
		return nil, err
	}
	return &access, nil
}

func (c *Client) DeleteLocation(ctx context.Context, locationID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/locations/%d", locationID), nil, nil)
}

// DeleteAccount deletes the authenticated user and clears the token.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/user", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}
