package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/jwt"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de operadores.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	allowed  map[string]struct{}
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. allowedEmails vacío = cualquier usuario activo.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, allowedEmails []string, log *logger.Logger) *AuthUseCase {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		allowed[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, allowed: allowed, log: log}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Emails fuera de la lista permitida o usuarios inactivos reciben ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.isAllowed(email) || !user.Active {
		uc.log.Warn().Str("email", email).Msg("login recusado")
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) isAllowed(email string) bool {
	if len(uc.allowed) == 0 {
		return true
	}
	_, ok := uc.allowed[email]
	return ok
}
