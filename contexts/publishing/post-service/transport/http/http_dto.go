package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AuthorPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type CategoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PostPayload struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	ImageURL   string          `json:"image_url,omitempty"`
	Status     string          `json:"status"`
	LikesCount int             `json:"likes_count"`
	ShareCount int             `json:"share_count"`
	CreatedAt  string          `json:"created_at"`
	Author     AuthorPayload   `json:"author"`
	Category   CategoryPayload `json:"category"`
}

type PaginationPayload struct {
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"hasMore"`
	TotalPages int   `json:"totalPages"`
}

type PostListResponse struct {
	Status     string            `json:"status"`
	Data       []PostPayload     `json:"data"`
	Pagination PaginationPayload `json:"pagination"`
}

type PostResponse struct {
	Status string      `json:"status"`
	Data   PostPayload `json:"data"`
}

type CreatePostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	ImageURL   string `json:"imageUrl,omitempty"`
	CategoryID string `json:"categoryId"`
}

type UpdatePostRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	Status     *string `json:"status,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

type DeletePostResponse struct {
	Status string `json:"status"`
	Data   struct {
		Deleted string `json:"deleted"`
	} `json:"data"`
}
