package service

import (
	"context"
	"errors"
	"testing"

	"github.com/LenerGonzalez/Posys-sub003/internal/config"
	"github.com/LenerGonzalez/Posys-sub003/internal/dto"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"
	"github.com/LenerGonzalez/Posys-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func testAuthService(t *testing.T) (AuthService, *stubUsuarioRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUsuarioRepo{users: map[string]*model.Usuario{
		"maria": {
			ID:           uuid.New(),
			Username:     "maria",
			Nombre:       "Maria Contadora",
			PasswordHash: string(hash),
			Rol:          model.RolContador,
			Roles:        []string{model.RolContador},
			Activo:       true,
		},
	}}
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
	}
	return NewAuthService(repo, cfg), repo
}

func TestLogin(t *testing.T) {
	svc, _ := testAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria", Password: "secreto",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RolContador, resp.User.Rol)
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria", Password: "otra",
	})
	assert.Error(t, err)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "nadie", Password: "secreto",
	})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	svc, _ := testAuthService(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria", Password: "secreto",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "maria", renovado.User.Username)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}
