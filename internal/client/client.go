// Package client is an HTTP client for the /api/v1 surface. It implements
// browse.Backend and browse.AuthSource, so programmatic frontends get the same
// interaction model the web UI uses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"sync"

	"github.com/aitoolhub/aitoolhub/internal/api"
	"github.com/aitoolhub/aitoolhub/internal/browse"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Client talks to an aitoolhub server. Authentication is either a personal
// access token (set Token) or an email/password session established with
// SignIn, which is kept in the cookie jar.
type Client struct {
	baseURL string
	http    *http.Client

	mu        sync.Mutex
	token     string
	listeners []func()

	// Cached /api/v1/me response shared by CurrentUser and Role, invalidated
	// on every auth change. nil with meValid set means signed out.
	me      *api.UserResponse
	meValid bool
}

// New creates a Client for the server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
	}, nil
}

// SetToken switches the client to Bearer token authentication.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.notify()
}

// APIError is a non-2xx response decoded from the standard error body.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.Unlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb api.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&eb) == nil {
			apiErr.Code = eb.Code
			apiErr.Message = eb.Error
		}
		return apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// --- browse.Backend ---

// ListTools fetches the catalog filtered by q.
func (c *Client) ListTools(ctx context.Context, q store.ToolQuery) ([]*store.Tool, error) {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("q", q.Search)
	}
	if q.Category != "" {
		vals.Set("category", q.Category)
	}
	if q.Sort != "" {
		vals.Set("sort", string(q.Sort))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	path := "/api/v1/tools"
	if len(vals) > 0 {
		path += "?" + vals.Encode()
	}

	var resp api.ToolListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	tools := make([]*store.Tool, 0, len(resp.Tools))
	for _, tr := range resp.Tools {
		tools = append(tools, fromToolResponse(tr))
	}
	return tools, nil
}

// Categories fetches the distinct category list.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp api.CategoryListResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// FavoriteIDs fetches the caller's favorited tool IDs.
func (c *Client) FavoriteIDs(ctx context.Context) ([]string, error) {
	var resp api.FavoriteIDsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/me/favorites/ids", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToolIDs, nil
}

// AddFavorite marks a tool as a favorite.
func (c *Client) AddFavorite(ctx context.Context, toolID string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/me/favorites/"+toolID, nil, nil)
}

// RemoveFavorite removes a tool from the caller's favorites.
func (c *Client) RemoveFavorite(ctx context.Context, toolID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/me/favorites/"+toolID, nil, nil)
}

// --- browse.AuthSource ---

// currentMe returns the /api/v1/me response, fetching it at most once per
// auth state. Identity and role resolve on every auth transition, so caching
// here halves those round-trips.
func (c *Client) currentMe(ctx context.Context) (*api.UserResponse, error) {
	c.mu.Lock()
	if c.meValid {
		resp := c.me
		c.mu.Unlock()
		return resp, nil
	}
	c.mu.Unlock()

	var resp api.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/me", nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			c.mu.Lock()
			c.me, c.meValid = nil, true
			c.mu.Unlock()
			return nil, nil
		}
		return nil, err
	}
	c.mu.Lock()
	c.me, c.meValid = &resp, true
	c.mu.Unlock()
	return &resp, nil
}

// CurrentUser returns the signed-in identity, or nil when the server reports
// the session unauthenticated.
func (c *Client) CurrentUser(ctx context.Context) (*browse.Identity, error) {
	resp, err := c.currentMe(ctx)
	if err != nil || resp == nil {
		return nil, err
	}
	return &browse.Identity{ID: resp.ID, Email: resp.Email, DisplayName: resp.DisplayName}, nil
}

// Role returns the signed-in user's role, or "" when unauthenticated. It
// decodes from the same response CurrentUser uses.
func (c *Client) Role(ctx context.Context) (string, error) {
	resp, err := c.currentMe(ctx)
	if err != nil || resp == nil {
		return "", err
	}
	return resp.Role, nil
}

// OnAuthChange registers fn to run after SignIn, SignUp, SignOut, or SetToken.
func (c *Client) OnAuthChange(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
	idx := len(c.listeners) - 1
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listeners[idx] = nil
	}
}

// notify drops the cached identity and runs the auth-change listeners.
func (c *Client) notify() {
	c.mu.Lock()
	c.me, c.meValid = nil, false
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, fn := range listeners {
		if fn != nil {
			fn()
		}
	}
}

// --- Account operations ---

type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// SignIn establishes a session with email/password credentials.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, nil)
	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// SignUp creates an account and establishes a session.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) error {
	err := c.do(ctx, http.MethodPost, "/auth/signup", credentials{Email: email, Password: password, DisplayName: displayName}, nil)
	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// SignOut destroys the session.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil); err != nil {
		return err
	}
	c.notify()
	return nil
}

// --- Reviews and posts ---

// Tool fetches a single tool with its review summary.
func (c *Client) Tool(ctx context.Context, id string) (*api.ToolDetailResponse, error) {
	var resp api.ToolDetailResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/tools/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Reviews fetches all reviews of a tool with the rating summary.
func (c *Client) Reviews(ctx context.Context, toolID string) (*api.ReviewListResponse, error) {
	var resp api.ReviewListResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/tools/"+toolID+"/reviews", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitReview creates or replaces the caller's review of a tool.
func (c *Client) SubmitReview(ctx context.Context, toolID string, rating int, comment string) (*api.ReviewResponse, error) {
	var resp api.ReviewResponse
	req := api.UpsertReviewRequest{Rating: rating, Comment: comment}
	if err := c.do(ctx, http.MethodPut, "/api/v1/tools/"+toolID+"/reviews", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Posts fetches all blog posts, newest first.
func (c *Client) Posts(ctx context.Context) ([]*api.PostResponse, error) {
	var resp api.PostListResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// CreatePost publishes a blog post authored by the caller.
func (c *Client) CreatePost(ctx context.Context, title, content string) (*api.PostResponse, error) {
	var resp api.PostResponse
	req := api.CreatePostRequest{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func fromToolResponse(tr *api.ToolResponse) *store.Tool {
	t := &store.Tool{
		ID:          tr.ID,
		Name:        tr.Name,
		Category:    tr.Category,
		Description: tr.Description,
		URL:         tr.URL,
		Features:    store.Features(tr.Features),
		IsFeatured:  tr.IsFeatured,
		SortOrder:   tr.SortOrder,
		CreatedAt:   tr.CreatedAt,
		UpdatedAt:   tr.UpdatedAt,
	}
	if tr.LogoURL != "" {
		t.LogoURL.String = tr.LogoURL
		t.LogoURL.Valid = true
	}
	return t
}
