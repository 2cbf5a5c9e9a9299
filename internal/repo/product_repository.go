package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/products-api/internal/models"
)

// ProductRepository defines the data operations on the Products table.
// Update and Delete do not report whether a row matched.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, product models.Product) error
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id int64) error
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
