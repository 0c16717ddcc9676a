package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "chores-backend/internal/auth/domain"
	"chores-backend/internal/auth/repository"
	"chores-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a session token can fail verification
var ErrInvalidToken = errors.New("invalid or expired token")

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	provider IdentityProvider
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, provider IdentityProvider, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		provider: provider,
		config:   cfg,
	}
}

func (u *authUsecase) Login(ctx context.Context, externalToken string) (string, error) {
	ident, err := u.provider.GetUser(ctx, externalToken)
	if err != nil {
		return "", err
	}

	user, err := u.userRepo.GetOrCreate(ident.ID, ident.Email)
	if err != nil {
		return "", err
	}

	return u.IssueToken(user)
}

func (u *authUsecase) IssueToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.SessionExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.SecretKey))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}
