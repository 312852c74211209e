package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmoreno/solarops/internal/domain"
)

func TestApplyEstimateTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        domain.LineItemList
		taxRate      float64
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:  "empty estimate",
			items: nil,
		},
		{
			name: "single line, no tax",
			items: domain.LineItemList{
				{Description: "Detach 20 panels", Quantity: 20, UnitPrice: 45},
			},
			wantSubtotal: 900,
			wantTotal:    900,
		},
		{
			name: "multiple lines with tax",
			items: domain.LineItemList{
				{Description: "Detach", Quantity: 1, UnitPrice: 1200},
				{Description: "Reset", Quantity: 1, UnitPrice: 1500},
				{Description: "Rail hardware", Quantity: 12, UnitPrice: 8.75},
			},
			taxRate:      0.08,
			wantSubtotal: 2805,
			wantTax:      224.4,
			wantTotal:    3029.4,
		},
		{
			name: "client-sent line totals are ignored",
			items: domain.LineItemList{
				{Description: "Detach", Quantity: 2, UnitPrice: 100, Total: 9999},
			},
			wantSubtotal: 200,
			wantTotal:    200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := domain.Estimate{LineItems: tt.items, TaxRate: tt.taxRate}
			ApplyEstimateTotals(&e)
			assert.Equal(t, tt.wantSubtotal, e.Subtotal)
			assert.Equal(t, tt.wantTax, e.TaxAmount)
			assert.Equal(t, tt.wantTotal, e.Total)
			for _, item := range e.LineItems {
				assert.Equal(t, item.Quantity*item.UnitPrice, item.Total)
			}
		})
	}
}

func TestApplyInvoiceTotalsBalanceDue(t *testing.T) {
	inv := domain.Invoice{
		LineItems: domain.LineItemList{
			{Description: "Final reset invoice", Quantity: 1, UnitPrice: 2500},
		},
		TaxRate:    0.08,
		PaidAmount: 1000,
	}
	ApplyInvoiceTotals(&inv)

	assert.Equal(t, 2500.0, inv.Subtotal)
	assert.Equal(t, 200.0, inv.TaxAmount)
	assert.Equal(t, 2700.0, inv.Total)
	assert.Equal(t, 1700.0, inv.BalanceDue)
}

func TestApplyInvoiceTotalsOverpaid(t *testing.T) {
	inv := domain.Invoice{
		LineItems: domain.LineItemList{
			{Description: "Deposit", Quantity: 1, UnitPrice: 500},
		},
		PaidAmount: 600,
	}
	ApplyInvoiceTotals(&inv)

	assert.Equal(t, -100.0, inv.BalanceDue)
}
