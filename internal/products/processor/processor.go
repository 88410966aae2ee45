package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
)

// ProductStore defines the database operations required by ProductProcessor
type ProductStore interface {
	CreateProduct(ctx context.Context, vendorID uuid.UUID, name, description, category, subcategory, image string) (store.Product, error)
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	ListProductsByVendor(ctx context.Context, vendorID uuid.UUID) ([]store.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, name, description, category, subcategory, image string) (store.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnauthorized    = errors.New("unauthorized access to product")
)

type ProductProcessor struct {
	store  ProductStore
	logger *observability.Logger
}

func New(store ProductStore, logger *observability.Logger) ProductProcessor {
	return ProductProcessor{
		store:  store,
		logger: logger,
	}
}

// ProductParams carries the caller-editable fields of a product.
type ProductParams struct {
	Name        string
	Description string
	Category    string
	Subcategory string
	Image       string
}

func (p *ProductProcessor) CreateProduct(ctx context.Context, vendorID uuid.UUID, params ProductParams) (store.Product, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "vendor_id", Value: vendorID.String()},
	)

	product, err := p.store.CreateProduct(ctx, vendorID,
		params.Name, params.Description, params.Category, params.Subcategory, params.Image)
	if err != nil {
		p.logger.Error(ctx, "failed to create product", err)
		return store.Product{}, err
	}
	return product, nil
}

func (p *ProductProcessor) GetProduct(ctx context.Context, productID uuid.UUID) (store.Product, error) {
	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to get product", err)
		return store.Product{}, err
	}
	return product, nil
}

func (p *ProductProcessor) ListProducts(ctx context.Context, vendorID uuid.UUID) ([]store.Product, error) {
	products, err := p.store.ListProductsByVendor(ctx, vendorID)
	if err != nil {
		p.logger.Error(ctx, "failed to list products", err)
		return nil, err
	}
	if products == nil {
		products = []store.Product{}
	}
	return products, nil
}

// UpdateProduct replaces the editable fields of a product the vendor owns.
func (p *ProductProcessor) UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, params ProductParams) (store.Product, error) {
	if err := p.checkOwnership(ctx, vendorID, productID); err != nil {
		return store.Product{}, err
	}

	product, err := p.store.UpdateProduct(ctx, productID,
		params.Name, params.Description, params.Category, params.Subcategory, params.Image)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to update product", err)
		return store.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a product the vendor owns. Click history for the
// product is retained.
func (p *ProductProcessor) DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error {
	if err := p.checkOwnership(ctx, vendorID, productID); err != nil {
		return err
	}

	if err := p.store.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to delete product", err)
		return err
	}
	return nil
}

func (p *ProductProcessor) checkOwnership(ctx context.Context, vendorID, productID uuid.UUID) error {
	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to check product ownership", err)
		return err
	}
	if product.VendorID != vendorID {
		return ErrUnauthorized
	}
	return nil
}
