package payment

import (
	"context"
	"math"

	"shopapi/internal/usecase"

	braintree "github.com/braintree-go/braintree-go"
)

// BraintreeGatewayはusecase.PaymentGatewayのBraintree実装。
type BraintreeGateway struct {
	bt *braintree.Braintree
}

// NewBraintreeGatewayはenvが"production"以外ならSandboxに接続する。
func NewBraintreeGateway(env string, merchantID string, publicKey string, privateKey string) *BraintreeGateway {
	e := braintree.Sandbox
	if env == "production" {
		e = braintree.Production
	}
	return &BraintreeGateway{bt: braintree.New(e, merchantID, publicKey, privateKey)}
}

func (g *BraintreeGateway) ClientToken(ctx context.Context) (string, error) {
	return g.bt.ClientToken().Generate(ctx)
}

// Saleは1回の承認（submit for settlement込み）。リトライはしない。
func (g *BraintreeGateway) Sale(ctx context.Context, amount float64, nonce string) (usecase.GatewayTransaction, error) {
	tx, err := g.bt.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(int64(math.Round(amount*100)), 2),
		PaymentMethodNonce: nonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		return usecase.GatewayTransaction{}, err
	}

	return usecase.GatewayTransaction{
		ID:     tx.Id,
		Status: string(tx.Status),
	}, nil
}
