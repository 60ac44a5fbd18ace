package api

import "time"

// --- Tool types ---

// ToolResponse is the JSON representation of a single catalog entry.
type ToolResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Features    []string  `json:"features"`
	IsFeatured  bool      `json:"is_featured"`
	SortOrder   int       `json:"sort_order"`
	Favorited   bool      `json:"favorited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToolDetailResponse adds the review summary to a tool.
type ToolDetailResponse struct {
	ToolResponse
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// ToolListResponse is the response for tool list endpoints.
type ToolListResponse struct {
	Tools []*ToolResponse `json:"tools"`
}

// CreateToolRequest is the request body for POST /api/v1/admin/tools.
type CreateToolRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Features    []string `json:"features,omitempty"`
	IsFeatured  bool     `json:"is_featured,omitempty"`
	SortOrder   int      `json:"sort_order,omitempty"`
}

// UpdateToolRequest is the request body for PUT /api/v1/admin/tools/{id}.
// The tool ID is immutable and taken from the path.
type UpdateToolRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Features    []string `json:"features,omitempty"`
	IsFeatured  bool     `json:"is_featured,omitempty"`
	SortOrder   int      `json:"sort_order,omitempty"`
}

// CategoryListResponse is the response for GET /api/v1/categories.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// --- Review types ---

// UpsertReviewRequest is the request body for PUT /api/v1/tools/{id}/reviews.
type UpsertReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ReviewResponse is the JSON representation of a review.
type ReviewResponse struct {
	ID         string    `json:"id"`
	ToolID     string    `json:"tool_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewListResponse is the response for review list endpoints.
type ReviewListResponse struct {
	Reviews     []*ReviewResponse `json:"reviews"`
	AvgRating   float64           `json:"avg_rating"`
	ReviewCount int               `json:"review_count"`
}

// --- Post types ---

// CreatePostRequest is the request body for POST /api/v1/posts.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostResponse is the JSON representation of a blog post.
type PostResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostListResponse is the response for post list endpoints.
type PostListResponse struct {
	Posts []*PostResponse `json:"posts"`
}

// --- Favorite types ---

// FavoriteIDsResponse is the response for GET /api/v1/me/favorites/ids.
type FavoriteIDsResponse struct {
	ToolIDs []string `json:"tool_ids"`
}

// --- User types ---

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserListResponse is the response for user list endpoints.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// UpdateRoleRequest is the request body for PUT /api/v1/admin/users/{id}/role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// --- Token types ---

// CreateTokenRequest is the request body for POST /api/v1/tokens.
type CreateTokenRequest struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TokenResponse is the JSON representation of an API token. The plaintext
// token appears only in the creation response.
type TokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TokenCreatedResponse is returned from POST /api/v1/tokens and carries the
// plaintext token exactly once.
type TokenCreatedResponse struct {
	TokenResponse
	Token string `json:"token"`
}

// TokenListResponse is the response for token list endpoints.
type TokenListResponse struct {
	Tokens []*TokenResponse `json:"tokens"`
}
