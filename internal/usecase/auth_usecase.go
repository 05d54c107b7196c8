package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ハッシュと平文の照合。
type PasswordVerifier interface {
	Verify(hash string, plain string) bool
}

// ログイン成功時のアクセストークンを発行する約束。
type TokenIssuer interface {
	Issue(userID int64, role int) (string, error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

type AuthUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   TokenIssuer
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Answer   string
	DOB      string
}

// Registerは会員登録。email重複は409（既存APIのメッセージをそのまま返す）。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	email := strings.TrimSpace(in.Email)

	_, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return model.User{}, NewHTTPError(http.StatusConflict, "Already Register please login")
	}
	if err != repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "Error in Registration")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "Error in Registration")
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Address:      in.Address,
		Answer:       in.Answer,
		DOB:          in.DOB,
		Role:         model.RoleUser,
	})
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "Error in Registration")
	}
	return user, nil
}

type LoginOutput struct {
	User  model.User
	Token string
}

// Loginはメールとパスワードで認証して7日間有効のトークンを返す。
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid email or password")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusNotFound, "Email is not registered")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "Error in login")
	}

	if !u.verifier.Verify(user.PasswordHash, password) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid Password")
	}

	token, err := u.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "Error in login")
	}

	return LoginOutput{User: user, Token: token}, nil
}

type ForgotPasswordInput struct {
	Email       string
	Answer      string
	NewPassword string
}

// ForgotPasswordは秘密の答えが一致した場合のみパスワードを再設定する。
func (u *AuthUsecase) ForgotPassword(ctx context.Context, in ForgotPasswordInput) error {
	user, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Wrong Email Or Answer")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
	if user.Answer != in.Answer {
		return NewHTTPError(http.StatusNotFound, "Wrong Email Or Answer")
	}

	hash, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
	return nil
}
