package usecase

import (
	"context"
	"fmt"
	"net/http"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

// GatewayTransactionは決済ゲートウェイの承認結果。
type GatewayTransaction struct {
	ID     string
	Status string
}

// PaymentGatewayは外部決済サービスとの境界。
// Saleは1回の承認を同期的に行い、失敗はerrorで返す。
type PaymentGateway interface {
	ClientToken(ctx context.Context) (string, error)
	Sale(ctx context.Context, amount float64, nonce string) (GatewayTransaction, error)
}

type CheckoutUsecase struct {
	gateway   PaymentGateway
	orderRepo repo.OrderRepository
}

// DI
func NewCheckoutUsecase(gateway PaymentGateway, orderRepo repo.OrderRepository) *CheckoutUsecase {
	return &CheckoutUsecase{gateway: gateway, orderRepo: orderRepo}
}

// CartItemはクライアント側カートの商品スナップショット。
// 同じ商品が重複して入ることも許す（重複分はそのまま合算される）。
type CartItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type PaymentInput struct {
	Nonce string
	Cart  []CartItem
}

// ClientTokenはフロントの決済ウィジェット用トークンを発行する。
func (u *CheckoutUsecase) ClientToken(ctx context.Context) (string, error) {
	token, err := u.safeClientToken(ctx)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return token, nil
}

// Payはカート合計を1回だけゲートウェイに承認依頼し、
// 成功時のみ注文を1件保存する。失敗時の書き込みはゼロ（リトライもしない）。
func (u *CheckoutUsecase) Pay(ctx context.Context, buyerID int64, in PaymentInput) error {
	if buyerID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// 合計は単純な線形和。税・送料・割引・丸めは無し。
	var total float64
	for _, item := range in.Cart {
		total += item.Price
	}

	tx, err := u.safeSale(ctx, total, in.Nonce)
	if err != nil {
		// 注文は作らない
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// スナップショット明細（在庫の減算はしない。既知のギャップとして残す）
	products := make([]model.OrderProduct, 0, len(in.Cart))
	for _, item := range in.Cart {
		products = append(products, model.OrderProduct{
			ProductID:           item.ID,
			NameSnapshot:        item.Name,
			DescriptionSnapshot: item.Description,
			PriceSnapshot:       item.Price,
		})
	}

	_, err = u.orderRepo.Create(ctx, model.Order{
		BuyerID:              buyerID,
		Status:               model.OrderStatusNotProcess,
		PaymentTransactionID: tx.ID,
		PaymentSuccess:       true,
		Products:             products,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// ゲートウェイSDKのpanicも単一の境界で握って、レスポンス未送信を防ぐ。
func (u *CheckoutUsecase) safeSale(ctx context.Context, amount float64, nonce string) (tx GatewayTransaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("payment gateway: %v", r)
		}
	}()
	return u.gateway.Sale(ctx, amount, nonce)
}

func (u *CheckoutUsecase) safeClientToken(ctx context.Context) (token string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("payment gateway: %v", r)
		}
	}()
	return u.gateway.ClientToken(ctx)
}
