package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	CategoryID  int64     `gorm:"not null;index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Shipping    bool      `gorm:"not null;default:false" json:"shipping"`

	// 写真はDBにインライン保存。一覧系レスポンスには載せない
	// （/product/product-photo/:pid で個別配信する）。
	PhotoData        []byte `gorm:"type:bytea" json:"-"`
	PhotoContentType string `gorm:"type:varchar(100)" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
