package service

import (
	"context"

	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/view"
)

// Mock Storefront for testing
type mockStorefront struct {
	optionChangeFunc   func(ctx context.Context, productID string, form *domain.FormSnapshot) (*domain.AttributeChangeResponse, error)
	cartItemAddFunc    func(ctx context.Context, form *domain.FormSnapshot) (*domain.ItemAddResult, error)
	cartGetContentFunc func(ctx context.Context, opts domain.CartContentOptions) (string, error)

	optionChangeCalls   []string
	cartItemAddCalls    []*domain.FormSnapshot
	cartGetContentCalls []domain.CartContentOptions
}

func (m *mockStorefront) OptionChange(ctx context.Context, productID string, form *domain.FormSnapshot) (*domain.AttributeChangeResponse, error) {
	m.optionChangeCalls = append(m.optionChangeCalls, productID)
	if m.optionChangeFunc != nil {
		return m.optionChangeFunc(ctx, productID, form)
	}
	return &domain.AttributeChangeResponse{}, nil
}

func (m *mockStorefront) CartItemAdd(ctx context.Context, form *domain.FormSnapshot) (*domain.ItemAddResult, error) {
	m.cartItemAddCalls = append(m.cartItemAddCalls, form)
	if m.cartItemAddFunc != nil {
		return m.cartItemAddFunc(ctx, form)
	}
	return &domain.ItemAddResult{CartItem: &domain.CartItem{Hash: "hash-1"}}, nil
}

func (m *mockStorefront) CartGetContent(ctx context.Context, opts domain.CartContentOptions) (string, error) {
	m.cartGetContentCalls = append(m.cartGetContentCalls, opts)
	if m.cartGetContentFunc != nil {
		return m.cartGetContentFunc(ctx, opts)
	}
	return `<div data-cart-quantity="1"></div>`, nil
}

// newTestScope builds a memory scope with three select-style attributes (ids 1..3)
func newTestScope() *view.MemoryScope {
	scope := view.NewMemoryScope()
	scope.Attributes = []view.AttributeElement{
		view.NewMemoryAttribute(1, domain.AttributeTypeSelect, "Small"),
		view.NewMemoryAttribute(2, domain.AttributeTypeSelect, "Medium"),
		view.NewMemoryAttribute(3, domain.AttributeTypeSelect, "Large"),
	}
	return scope
}

func testForm() *domain.FormSnapshot {
	return &domain.FormSnapshot{ProductID: "86"}
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }
