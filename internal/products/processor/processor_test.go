package processor

import (
	"context"
	"errors"
	"testing"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newTestProcessor(t *testing.T) (ProductProcessor, *MockProductStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := NewMockProductStore(ctrl)
	return New(mockStore, observability.NewLogger()), mockStore
}

func TestCreateProduct(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	vendorID := uuid.New()
	params := ProductParams{Name: "Leather Bag", Category: "fashion", Subcategory: "bags"}
	want := store.Product{ID: uuid.New(), VendorID: vendorID, Name: "Leather Bag"}

	mockStore.EXPECT().
		CreateProduct(gomock.Any(), vendorID, "Leather Bag", "", "fashion", "bags", "").
		Return(want, nil)

	product, err := p.CreateProduct(context.Background(), vendorID, params)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if product.ID != want.ID {
		t.Errorf("expected product %s, got %s", want.ID, product.ID)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	productID := uuid.New()
	mockStore.EXPECT().GetProductByID(gomock.Any(), productID).Return(store.Product{}, store.ErrNotFound)

	_, err := p.GetProduct(context.Background(), productID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListProducts_NilBecomesEmpty(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	vendorID := uuid.New()
	mockStore.EXPECT().ListProductsByVendor(gomock.Any(), vendorID).Return(nil, nil)

	products, err := p.ListProducts(context.Background(), vendorID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if products == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestUpdateProduct_OwnershipEnforced(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	vendorID := uuid.New()
	otherVendorID := uuid.New()
	productID := uuid.New()

	mockStore.EXPECT().GetProductByID(gomock.Any(), productID).
		Return(store.Product{ID: productID, VendorID: otherVendorID}, nil)

	_, err := p.UpdateProduct(context.Background(), vendorID, productID, ProductParams{Name: "X", Category: "y"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateProduct_Success(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	vendorID := uuid.New()
	productID := uuid.New()
	params := ProductParams{Name: "New Name", Description: "d", Category: "home", Subcategory: "decor", Image: "img"}

	mockStore.EXPECT().GetProductByID(gomock.Any(), productID).
		Return(store.Product{ID: productID, VendorID: vendorID}, nil)
	mockStore.EXPECT().
		UpdateProduct(gomock.Any(), productID, "New Name", "d", "home", "decor", "img").
		Return(store.Product{ID: productID, VendorID: vendorID, Name: "New Name"}, nil)

	product, err := p.UpdateProduct(context.Background(), vendorID, productID, params)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if product.Name != "New Name" {
		t.Errorf("expected updated name, got %q", product.Name)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	vendorID := uuid.New()
	productID := uuid.New()
	mockStore.EXPECT().GetProductByID(gomock.Any(), productID).Return(store.Product{}, store.ErrNotFound)

	err := p.DeleteProduct(context.Background(), vendorID, productID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct_Success(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	vendorID := uuid.New()
	productID := uuid.New()

	mockStore.EXPECT().GetProductByID(gomock.Any(), productID).
		Return(store.Product{ID: productID, VendorID: vendorID}, nil)
	mockStore.EXPECT().DeleteProduct(gomock.Any(), productID).Return(nil)

	if err := p.DeleteProduct(context.Background(), vendorID, productID); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
