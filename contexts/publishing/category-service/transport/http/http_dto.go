package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CategoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	Status string          `json:"status"`
	Data   CategoryPayload `json:"data"`
}

type CategoryListResponse struct {
	Status string            `json:"status"`
	Data   []CategoryPayload `json:"data"`
}
