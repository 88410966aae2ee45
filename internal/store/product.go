package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is owned by the marketplace catalog; the analytics core only
// reads it to resolve the owning vendor.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	VendorID    uuid.UUID `db:"vendor_id" json:"vendorId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Subcategory string    `db:"subcategory" json:"subcategory"`
	Image       string    `db:"image" json:"image"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

const sqlCreateProduct = `
INSERT INTO products (vendor_id, name, description, category, subcategory, image)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, vendor_id, name, description, category, subcategory, image, created_at, updated_at
`

func (s *Store) CreateProduct(ctx context.Context, vendorID uuid.UUID, name, description, category, subcategory, image string) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlCreateProduct, vendorID, name, description, category, subcategory, image)
	if err != nil {
		s.logger.Error(ctx, "failed to insert product", err)
		return Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

const sqlGetProductByID = `
SELECT id, vendor_id, name, description, category, subcategory, image, created_at, updated_at
FROM products
WHERE id = $1
`

func (s *Store) GetProductByID(ctx context.Context, productID uuid.UUID) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductByID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get product", err)
		return Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

const sqlGetProductVendorID = `
SELECT vendor_id
FROM products
WHERE id = $1
`

// GetProductVendorID resolves the owning vendor of a product without
// loading the whole row. Ingestion calls this on every click.
func (s *Store) GetProductVendorID(ctx context.Context, productID uuid.UUID) (uuid.UUID, error) {
	var vendorID uuid.UUID
	err := s.db.GetContext(ctx, &vendorID, sqlGetProductVendorID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get product vendor", err)
		return uuid.Nil, fmt.Errorf("failed to get product vendor: %w", err)
	}
	return vendorID, nil
}

const sqlListProductsByVendor = `
SELECT id, vendor_id, name, description, category, subcategory, image, created_at, updated_at
FROM products
WHERE vendor_id = $1
ORDER BY created_at DESC
`

func (s *Store) ListProductsByVendor(ctx context.Context, vendorID uuid.UUID) ([]Product, error) {
	var products []Product
	err := s.db.SelectContext(ctx, &products, sqlListProductsByVendor, vendorID)
	if err != nil {
		s.logger.Error(ctx, "failed to list products", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

const sqlUpdateProduct = `
UPDATE products
SET name = $2, description = $3, category = $4, subcategory = $5, image = $6, updated_at = now()
WHERE id = $1
RETURNING id, vendor_id, name, description, category, subcategory, image, created_at, updated_at
`

func (s *Store) UpdateProduct(ctx context.Context, productID uuid.UUID, name, description, category, subcategory, image string) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlUpdateProduct, productID, name, description, category, subcategory, image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update product", err)
		return Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

const sqlDeleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (s *Store) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteProduct, productID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
