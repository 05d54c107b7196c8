package usecase

import (
	"context"
	"net/http"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo}
}

// ListMyOrdersは購入者本人の注文一覧（スナップショット明細込み）。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, buyerID int64) ([]model.Order, error) {
	if buyerID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	orders, err := u.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error While Geting Orders")
	}
	return orders, nil
}

// ListAllOrdersは管理者向け全注文（新着順）。
func (u *OrderUsecase) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error While Geting Orders")
	}
	return orders, nil
}

// UpdateStatusは管理者によるステータス上書き。
// 既知ラベルであればどの状態からでも受け付ける（遷移の前提条件なし）。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if !status.Known() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, status)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error While Updateing Order")
	}
	return nil
}
