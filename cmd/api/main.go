package main

import (
	"time"

	"shopapi/internal/config"
	"shopapi/internal/domain/model"
	"shopapi/internal/handler"
	"shopapi/internal/infra/db"
	"shopapi/internal/infra/payment"
	infraRepo "shopapi/internal/infra/repository"
	"shopapi/internal/server"
	"shopapi/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

// アクセストークン（7日間有効）
type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func main() {
	// .envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderProduct{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//決済ゲートウェイ
	gateway := payment.NewBraintreeGateway(
		cfg.BraintreeEnv,
		cfg.BraintreeMerchantID,
		cfg.BraintreePublicKey,
		cfg.BraintreePrivateKey,
	)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    7 * 24 * time.Hour,
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, hasher, verifier, issuer)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(gateway, orderRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//Handler生成
	authH := handler.NewAuthHandler(authUC)
	categoryH := handler.NewCategoryHandler(categoryUC)
	productH := handler.NewProductHandler(productUC, adminProductUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, userRepo, authH, categoryH, productH, checkoutH, orderH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
