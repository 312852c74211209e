package domain

import (
	"database/sql/driver"
	"time"
)

// LineItem is one billable line on an estimate or invoice.
// Total is quantity times unit price, computed server-side.
type LineItem struct {
	SKUID       string  `json:"sku_id,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// LineItemList stores line items as JSON in a text column.
type LineItemList []LineItem

// Value implements the driver.Valuer interface.
func (l LineItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue(l)
}

// Scan implements the sql.Scanner interface.
func (l *LineItemList) Scan(value interface{}) error {
	if value == nil {
		*l = LineItemList{}
		return nil
	}
	return jsonScan(value, l)
}

// EstimateStatus tracks an estimate's sales lifecycle.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusDeclined EstimateStatus = "declined"
)

// Estimate is a quote for a job. Subtotal, tax, and total are recomputed
// from line items on every write.
type Estimate struct {
	ID         string         `gorm:"type:text;primaryKey" json:"id"`
	JobID      string         `gorm:"type:text;index:idx_estimates_job" json:"job_id,omitempty"`
	CustomerID string         `gorm:"type:text;index:idx_estimates_customer" json:"customer_id,omitempty"`
	Status     EstimateStatus `gorm:"type:text;index:idx_estimates_status;default:draft" json:"status"`
	LineItems  LineItemList   `gorm:"type:text" json:"line_items"`
	TaxRate    float64        `json:"tax_rate"`
	Subtotal   float64        `json:"subtotal"`
	TaxAmount  float64        `json:"tax_amount"`
	Total      float64        `json:"total"`
	ValidUntil *time.Time     `json:"valid_until,omitempty"`
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TableName returns the database table name for Estimate.
func (Estimate) TableName() string {
	return "estimates"
}

// InvoiceStatus tracks an invoice's payment lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// InvoiceType distinguishes deposit, progress, and final billing.
type InvoiceType string

const (
	InvoiceTypeDeposit  InvoiceType = "deposit"
	InvoiceTypeProgress InvoiceType = "progress"
	InvoiceTypeFinal    InvoiceType = "final"
)

// Invoice bills a customer for a job. Totals and balance due are
// recomputed from line items and paid amount on every write.
type Invoice struct {
	ID         string        `gorm:"type:text;primaryKey" json:"id"`
	JobID      string        `gorm:"type:text;index:idx_invoices_job" json:"job_id,omitempty"`
	CustomerID string        `gorm:"type:text;index:idx_invoices_customer" json:"customer_id,omitempty"`
	Status     InvoiceStatus `gorm:"type:text;index:idx_invoices_status;default:draft" json:"status"`
	Type       InvoiceType   `gorm:"type:text;default:final" json:"type"`
	LineItems  LineItemList  `gorm:"type:text" json:"line_items"`
	TaxRate    float64       `json:"tax_rate"`
	Subtotal   float64       `json:"subtotal"`
	TaxAmount  float64       `json:"tax_amount"`
	Total      float64       `json:"total"`
	PaidAmount float64       `json:"paid_amount"`
	BalanceDue float64       `json:"balance_due"`
	DueDate    *time.Time    `json:"due_date,omitempty"`
	Notes      string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// TableName returns the database table name for Invoice.
func (Invoice) TableName() string {
	return "invoices"
}

// SKUType distinguishes product and service SKUs.
type SKUType string

const (
	SKUTypeProduct SKUType = "product"
	SKUTypeService SKUType = "service"
)

// ProductServiceSKU is a catalog entry priced for estimates and invoices.
type ProductServiceSKU struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	SKU         string    `gorm:"type:text;not null;uniqueIndex:idx_skus_code" json:"sku"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Type        SKUType   `gorm:"type:text;default:product" json:"type"`
	Category    string    `gorm:"type:text;index:idx_skus_category" json:"category,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	Cost        float64   `json:"cost"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for ProductServiceSKU.
func (ProductServiceSKU) TableName() string {
	return "skus"
}
