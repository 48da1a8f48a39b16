package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/commerce-api/internal/application/dto"
	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
	"github.com/jhoicas/commerce-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret            string
	AccessExpMinutes  int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación: registro, login y renovación de
// access token contra refresh tokens persistidos.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// SignUp crea un usuario: hashea password con bcrypt y persiste. El rol por
// defecto es client. Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleClient
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SignIn verifica username/password, genera el access token y persiste un
// refresh token nuevo.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SignInResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rt := &entity.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		Revoked:   false,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.RefreshExpMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return &dto.SignInResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

// Refresh emite un nuevo access token a partir de un refresh token persistido,
// no revocado y no vencido.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	stored, err := uc.tokenRepo.GetByToken(ctx, in.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || stored.Expired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}
	userID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// SignOut revoca el refresh token entregado. Es idempotente: un token
// inexistente o ya revocado no es un error.
func (uc *AuthUseCase) SignOut(ctx context.Context, in dto.SignOutRequest) error {
	stored, err := uc.tokenRepo.GetByToken(ctx, in.RefreshToken)
	if err != nil {
		return err
	}
	if stored == nil || stored.Revoked {
		return nil
	}
	return uc.tokenRepo.Revoke(ctx, stored.ID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
