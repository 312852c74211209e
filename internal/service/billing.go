package service

import (
	"math"

	"github.com/jmoreno/solarops/internal/domain"
)

// roundCents rounds a dollar amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeLineItems recomputes each line's total from quantity and unit
// price, ignoring whatever the client sent.
func NormalizeLineItems(items domain.LineItemList) domain.LineItemList {
	for i := range items {
		items[i].Total = roundCents(items[i].Quantity * items[i].UnitPrice)
	}
	return items
}

// ApplyEstimateTotals recomputes an estimate's subtotal, tax, and total
// from its line items. Called on every create and update.
func ApplyEstimateTotals(e *domain.Estimate) {
	e.LineItems = NormalizeLineItems(e.LineItems)
	var subtotal float64
	for _, item := range e.LineItems {
		subtotal += item.Total
	}
	e.Subtotal = roundCents(subtotal)
	e.TaxAmount = roundCents(subtotal * e.TaxRate)
	e.Total = roundCents(e.Subtotal + e.TaxAmount)
}

// ApplyInvoiceTotals recomputes an invoice's totals and balance due from
// its line items and paid amount. Called on every create and update.
func ApplyInvoiceTotals(inv *domain.Invoice) {
	inv.LineItems = NormalizeLineItems(inv.LineItems)
	var subtotal float64
	for _, item := range inv.LineItems {
		subtotal += item.Total
	}
	inv.Subtotal = roundCents(subtotal)
	inv.TaxAmount = roundCents(subtotal * inv.TaxRate)
	inv.Total = roundCents(inv.Subtotal + inv.TaxAmount)
	inv.BalanceDue = roundCents(inv.Total - inv.PaidAmount)
}
