package product

import (
	"errors"

	"shipline/internal/types"
)

var (
	ErrNotFound   = errors.New("product not found")
	ErrOutOfStock = errors.New("product is out of stock")
	ErrBadRequest = errors.New("bad request")
)

type Product struct {
	ID          types.ID
	Name        string
	Description *string
	Rating      float64
	Price       float64
	Quantity    int
	ImgURL      *string
}
