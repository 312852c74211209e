package domain

import "time"

// InventoryActivityType classifies an inventory movement.
type InventoryActivityType string

const (
	InventoryActivityReceive  InventoryActivityType = "receive"
	InventoryActivityConsume  InventoryActivityType = "consume"
	InventoryActivityTransfer InventoryActivityType = "transfer"
	InventoryActivityAdjust   InventoryActivityType = "adjust"
)

// InventoryItem is a stocked part or consumable.
type InventoryItem struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	ItemName  string    `gorm:"type:text;not null" json:"item_name"`
	SKU       string    `gorm:"type:text;index:idx_inventory_sku" json:"sku"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	Category  string    `gorm:"type:text;index:idx_inventory_category" json:"category"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for InventoryItem.
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// InventoryBin is a physical location holding quantity of one item.
type InventoryBin struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	ItemID    string    `gorm:"type:text;not null;index:idx_bins_item" json:"item_id"`
	Location  string    `gorm:"type:text" json:"location"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for InventoryBin.
func (InventoryBin) TableName() string {
	return "inventory_bins"
}

// InventoryActivity is an audit record for an inventory movement.
// QuantityChange is the net change to global stock; a bin-to-bin transfer
// is net zero with the moved quantity in Metadata.
type InventoryActivity struct {
	ID             string                `gorm:"type:text;primaryKey" json:"id"`
	ItemID         string                `gorm:"type:text;not null;index:idx_activity_item" json:"item_id"`
	Type           InventoryActivityType `gorm:"type:text;not null" json:"type"`
	QuantityChange int                   `json:"quantity_change"`
	FromBinID      string                `gorm:"type:text" json:"from_bin_id,omitempty"`
	ToBinID        string                `gorm:"type:text" json:"to_bin_id,omitempty"`
	Metadata       JSONMap               `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// TableName returns the database table name for InventoryActivity.
func (InventoryActivity) TableName() string {
	return "inventory_activity"
}
