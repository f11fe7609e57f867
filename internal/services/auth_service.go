package services

import (
	"context"
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/auth"
)

// AuthService implementa o login via Google: valida o ID token, acha ou
// cria o perfil pela conta do provedor e emite o JWT da aplicação
type AuthService struct {
	userRepo repositories.UserRepository
	verifier ports.GoogleVerifier
	tokens   *auth.TokenService
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	verifier ports.GoogleVerifier,
	tokens *auth.TokenService,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginResult agrega o perfil autenticado e o token emitido
type LoginResult struct {
	User  *entities.User
	Token string
}

// LoginWithGoogle valida o ID token e autentica o perfil, criando-o no
// primeiro login
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*LoginResult, error) {
	if idToken == "" {
		return nil, errors.ErrIDTokenRequired
	}

	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.logger.Warn("google token rejected", "error", err)
		return nil, errors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByProviderAccount(ctx, entities.AuthProviderGoogle, identity.Subject)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = s.registerFromGoogle(ctx, identity)
		if err != nil {
			return nil, err
		}
		s.logger.Info("user registered via google", "id", user.ID, "slug", user.Slug)
	}

	now := time.Now().UTC()
	user, err = s.userRepo.Update(ctx, user.ID, repositories.UserPatch{LastLoginAt: &now})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

func (s *AuthService) registerFromGoogle(ctx context.Context, identity *ports.GoogleIdentity) (*entities.User, error) {
	email, err := valueobjects.NewEmail(identity.Email)
	if err != nil {
		return nil, err
	}

	// No primeiro login o slug é semeado pela parte local do email; a
	// camada de persistência resolve colisões com sufixo numérico
	user := &entities.User{
		FullName:      identity.Name,
		Slug:          email.LocalPart(),
		Email:         email,
		EmailVerified: identity.EmailVerified,
		Avatar: entities.Avatar{
			URL: identity.Picture,
			Alt: identity.Name,
		},
		Auth: entities.AuthAccount{
			Provider:          entities.AuthProviderGoogle,
			ProviderAccountID: identity.Subject,
		},
	}

	return s.userRepo.Create(ctx, user)
}
