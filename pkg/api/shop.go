package api

import "github.com/go-playground/validator/v10"

// ProductCreateRequest is the body of POST /admin/add_product/.
type ProductCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"min=0"`
}

// Validate checks the request against its field constraints.
func (r *ProductCreateRequest) Validate() error {
	return validator.New().Struct(r)
}

// ProductResponse is one catalog product; the listing is public.
type ProductResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// CartAddRequest is the body of POST /cart/add/.
type CartAddRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"required,min=1"`
}

// Validate checks the request against its field constraints.
func (r *CartAddRequest) Validate() error {
	return validator.New().Struct(r)
}

// CartItemResponse is one cart line joined with its product details.
type CartItemResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
