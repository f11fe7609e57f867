package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
)

// Claims é o payload do token emitido no login: id do perfil e role.
// Os nomes de campo (uid, role) são os que o frontend legado decodifica.
type Claims struct {
	UID  string        `json:"uid"`
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService emite e verifica tokens HMAC-SHA256
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService cria um TokenService; expiry segue o formato de
// duração do Go (o legado usa 7 dias, "168h")
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	if expiry <= 0 {
		expiry = 168 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Sign emite um token para o perfil
func (s *TokenService) Sign(user *entities.User) (string, error) {
	now := s.now()

	claims := Claims{
		UID:  user.ID,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida a assinatura e a expiração e devolve as claims
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
