package service

import (
	"testing"

	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/view"
)

func newQuantityScope(value string, bounds domain.QuantityBounds) *view.MemoryScope {
	scope := view.NewMemoryScope()
	scope.View.QuantityInput = view.NewMemoryQuantityInput(value, bounds)
	scope.View.QuantityText = view.NewMemoryRegion(value)
	return scope
}

func TestQuantityService_Step(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		bounds    domain.QuantityBounds
		direction domain.StepDirection
		want      string
	}{
		{"inc without max is unbounded", "7", domain.QuantityBounds{}, domain.StepIncrement, "8"},
		{"inc below max", "2", domain.QuantityBounds{Max: 5}, domain.StepIncrement, "3"},
		{"inc at max is a no-op", "5", domain.QuantityBounds{Max: 5}, domain.StepIncrement, "5"},
		{"dec above min", "3", domain.QuantityBounds{Min: 2}, domain.StepDecrement, "2"},
		{"dec at min is a no-op", "2", domain.QuantityBounds{Min: 2}, domain.StepDecrement, "2"},
		{"dec at 1 is a no-op even without min", "1", domain.QuantityBounds{}, domain.StepDecrement, "1"},
		{"dec never goes below 1", "1", domain.QuantityBounds{Min: 0}, domain.StepDecrement, "1"},
		{"non-numeric value clamps to effective min", "abc", domain.QuantityBounds{Min: 3}, domain.StepIncrement, "3"},
		{"non-numeric value clamps to 1 without min", "", domain.QuantityBounds{}, domain.StepDecrement, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := newQuantityScope(tt.value, tt.bounds)
			svc := NewQuantityService(scope, nil)

			svc.Step(tt.direction)

			if got := scope.View.QuantityInput.Value(); got != tt.want {
				t.Errorf("input value = %q, want %q", got, tt.want)
			}
			// The visible text node must mirror the hidden input
			if got := scope.View.QuantityText.Text(); got != tt.want {
				t.Errorf("text value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuantityService_StepSequenceStaysInBounds(t *testing.T) {
	scope := newQuantityScope("1", domain.QuantityBounds{Min: 2, Max: 4})
	svc := NewQuantityService(scope, nil)

	sequence := []domain.StepDirection{
		domain.StepIncrement, domain.StepIncrement, domain.StepIncrement,
		domain.StepIncrement, domain.StepIncrement,
		domain.StepDecrement, domain.StepDecrement, domain.StepDecrement, domain.StepDecrement,
	}
	for _, direction := range sequence {
		svc.Step(direction)

		got := scope.View.QuantityInput.Value()
		if got < "1" || got > "4" {
			t.Fatalf("quantity %q escaped bounds", got)
		}
	}

	if got := scope.View.QuantityInput.Value(); got != "2" {
		t.Errorf("final quantity = %q, want clamped at min 2", got)
	}
}
