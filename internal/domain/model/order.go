package model

import "time"

type OrderStatus string

// ステータスのラベルは既存API互換（表記ゆれ含めてそのまま）。
const (
	OrderStatusNotProcess OrderStatus = "Not Process"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "deliver"
	OrderStatusCanceled   OrderStatus = "cancel"
)

// Knownは既知ラベルかどうかを返す。遷移の前提条件は持たない
// （管理者更新はどの状態からどの状態へでも上書き可）。
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusNotProcess, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID int64 `gorm:"not null;index" json:"buyer_id"`
	Buyer   *User `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:'Not Process'" json:"status"`

	// ゲートウェイの決済結果（不透明なオブジェクトのうち必要な2点）。
	PaymentTransactionID string `gorm:"type:varchar(64);not null" json:"payment_transaction_id"`
	PaymentSuccess       bool   `gorm:"not null" json:"payment_success"`

	Products []OrderProduct `gorm:"foreignKey:OrderID" json:"products"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// OrderProductは購入時点のスナップショット。以後、商品マスタから再解決しない。
type OrderProduct struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64   `gorm:"not null;index" json:"order_id"`
	ProductID           int64   `gorm:"not null;index" json:"product_id"`
	NameSnapshot        string  `gorm:"type:varchar(255);not null" json:"name"`
	DescriptionSnapshot string  `gorm:"type:text" json:"description"`
	PriceSnapshot       float64 `gorm:"not null" json:"price"`
}
