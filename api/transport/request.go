package transport

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// UpdateTaskRequest uses pointers so omitted fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

type LoginResponse struct {
	Token    string      `json:"token"`
	Identity interface{} `json:"identity"`
}

// PageMeta echoes the normalized pagination window back to the client.
type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
