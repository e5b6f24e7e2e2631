package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AccountPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Status string `json:"status"`
	Data   struct {
		Account AccountPayload `json:"user"`
		Token   string         `json:"token"`
	} `json:"data"`
}

type AccountResponse struct {
	Status string         `json:"status"`
	Data   AccountPayload `json:"data"`
}

type AccountListResponse struct {
	Status string           `json:"status"`
	Data   []AccountPayload `json:"data"`
}

type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type DeleteAccountResponse struct {
	Status string `json:"status"`
	Data   struct {
		Deleted string `json:"deleted"`
	} `json:"data"`
}
