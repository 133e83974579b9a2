package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/auth"
	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Padaria-api/pkg/jwt"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "padaria-test"}

func seedUser(t *testing.T, store *memory.Store, email, role string) string {
	t.Helper()
	users := usecase.NewUserUseCase(store.Users(), logger.Nop())
	out, err := users.Create(context.Background(), dto.CreateUserRequest{Email: email, Password: "segredo123", Role: role})
	require.NoError(t, err)
	return out.ID
}

func TestLogin_OK_TokenConRol(t *testing.T) {
	store := memory.NewStore()
	id := seedUser(t, store, "ana@padaria.com", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(store.Users(), jwtCfg, nil, logger.Nop())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@padaria.com", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, id, out.User.ID)

	claims, err := jwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "ana@padaria.com", "")
	uc := auth.NewAuthUseCase(store.Users(), jwtCfg, nil, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@padaria.com", Password: "errada123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@padaria.com", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_FueraDeListaPermitida(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "ana@padaria.com", "")
	seedUser(t, store, "bia@padaria.com", "")
	uc := auth.NewAuthUseCase(store.Users(), jwtCfg, []string{"Bia@Padaria.com"}, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@padaria.com", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "bia@padaria.com", Password: "segredo123"})
	assert.NoError(t, err)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	store := memory.NewStore()
	id := seedUser(t, store, "ana@padaria.com", "")
	u, err := store.Users().GetByID(context.Background(), id)
	require.NoError(t, err)
	u.Active = false
	require.NoError(t, store.Users().Save(context.Background(), u))

	uc := auth.NewAuthUseCase(store.Users(), jwtCfg, nil, logger.Nop())
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@padaria.com", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
