package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ProductRepo implements ports.ProductRepository.
type ProductRepo struct {
	pool Pool
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(pool Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// GetByID fetches a product.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, sales_count FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.SalesCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}
