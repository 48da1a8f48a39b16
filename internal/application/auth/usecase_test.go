package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commerce-api/internal/application/auth"
	"github.com/jhoicas/commerce-api/internal/application/dto"
	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type fakeTokenRepo struct {
	tokens  map[string]*entity.RefreshToken
	nextID  int64
	revokes int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *fakeTokenRepo) Create(ctx context.Context, t *entity.RefreshToken) error {
	r.nextID++
	t.ID = r.nextID
	r.tokens[t.Token] = t
	return nil
}

func (r *fakeTokenRepo) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	return r.tokens[token], nil
}

func (r *fakeTokenRepo) Revoke(ctx context.Context, id int64) error {
	r.revokes++
	for _, t := range r.tokens {
		if t.ID == id {
			t.Revoked = true
			return nil
		}
	}
	return errors.New("token inexistente en revoke")
}

func fixture(t *testing.T) (*fakeTokenRepo, *auth.AuthUseCase) {
	t.Helper()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	uc := auth.NewAuthUseCase(userRepo, tokenRepo, auth.JWTConfig{
		Secret:            "test-secret-key-for-unit-tests",
		AccessExpMinutes:  60,
		RefreshExpMinutes: 60,
		Issuer:            "commerce-api-test",
	})
	_, err := uc.SignUp(context.Background(), dto.SignUpRequest{
		Username: "carlos",
		Email:    "carlos@example.com",
		Password: "secreto-123",
	})
	require.NoError(t, err)
	return tokenRepo, uc
}

func signIn(t *testing.T, uc *auth.AuthUseCase) *dto.SignInResponse {
	t.Helper()
	out, err := uc.SignIn(context.Background(), dto.SignInRequest{
		Username: "carlos",
		Password: "secreto-123",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// SignIn / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestSignIn_PersisteRefreshToken(t *testing.T) {
	tokenRepo, uc := fixture(t)

	out := signIn(t, uc)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, entity.RoleClient, out.User.Role)

	stored, err := tokenRepo.GetByToken(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Revoked)
}

func TestSignIn_PasswordIncorrecto(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.SignIn(context.Background(), dto.SignInRequest{
		Username: "carlos",
		Password: "otro-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestRefresh_Exitoso(t *testing.T) {
	_, uc := fixture(t)
	out := signIn(t, uc)

	refreshed, err := uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: out.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_TokenDesconocido(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "no-persistido"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// ──────────────────────────────────────────────────────────────────────────────
// SignOut
// ──────────────────────────────────────────────────────────────────────────────

// SignOut revoca el token persistido y el refresh posterior queda bloqueado.
func TestSignOut_RevocaYBloqueaRefresh(t *testing.T) {
	tokenRepo, uc := fixture(t)
	out := signIn(t, uc)

	require.NoError(t, uc.SignOut(context.Background(), dto.SignOutRequest{RefreshToken: out.RefreshToken}))

	stored, err := tokenRepo.GetByToken(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Revoked)

	_, err = uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: out.RefreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// SignOut es idempotente: token desconocido o ya revocado no es un error y no
// vuelve a escribir.
func TestSignOut_Idempotente(t *testing.T) {
	tokenRepo, uc := fixture(t)
	out := signIn(t, uc)

	require.NoError(t, uc.SignOut(context.Background(), dto.SignOutRequest{RefreshToken: "desconocido"}))
	assert.Equal(t, 0, tokenRepo.revokes)

	require.NoError(t, uc.SignOut(context.Background(), dto.SignOutRequest{RefreshToken: out.RefreshToken}))
	require.NoError(t, uc.SignOut(context.Background(), dto.SignOutRequest{RefreshToken: out.RefreshToken}))
	assert.Equal(t, 1, tokenRepo.revokes)
}
