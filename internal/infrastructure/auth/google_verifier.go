package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/miyaru/miyaru-backend/internal/domain/ports"
)

// GoogleVerifier implementa ports.GoogleVerifier validando ID tokens
// contra as chaves públicas do Google, com o client ID da aplicação
// como audience
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier cria um verificador para o client ID configurado
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*ports.GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google token validation failed: %w", err)
	}

	identity := &ports.GoogleIdentity{
		Subject: payload.Subject,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}
