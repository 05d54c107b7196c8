package repository

import (
	"context"

	"shopapi/internal/domain/model"
)

type OrderRepository interface {
	// Createは注文本体とスナップショット明細を1回の書き込みで保存する。
	Create(ctx context.Context, o model.Order) (int64, error)

	// ListByBuyerは購入者本人の注文（明細・購入者込み）。
	ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error)

	// ListAllは管理者向け、created_at降順。
	ListAll(ctx context.Context) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
