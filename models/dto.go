package models

type ContactRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=50,person_name"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"required,min=10,max=20,intl_phone"`
	Message   string `json:"message" validate:"required,min=10,max=1000"`
	Timestamp string `json:"timestamp" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type EnquiryItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0,lte=10000"`
	Quantity int     `json:"quantity" validate:"required,gt=0,lte=100"`
	Category string  `json:"category" validate:"omitempty"`
}

type EnquiryRequest struct {
	Name       string        `json:"name" validate:"required,min=2,max=50,person_name"`
	Email      string        `json:"email" validate:"required,email,max=100"`
	Phone      string        `json:"phone" validate:"required,min=10,max=20,intl_phone"`
	Message    string        `json:"message" validate:"required,min=10,max=1000"`
	Items      []EnquiryItem `json:"items" validate:"required,min=1,dive"`
	TotalItems int           `json:"totalItems" validate:"required,gt=0"`
	TotalValue float64       `json:"totalValue" validate:"required,gt=0"`
	Timestamp  string        `json:"timestamp" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// FieldError is one entry of a full-form validation report; the API returns
// every failing field at once, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AddCartItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	IsFeatured  bool    `json:"is_featured" form:"is_featured"`
	IsActive    bool    `json:"is_active" form:"is_active"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id"`
	Price       float64 `json:"price" form:"price"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	IsFeatured  bool    `json:"is_featured" form:"is_featured"`
	IsActive    bool    `json:"is_active" form:"is_active"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}
