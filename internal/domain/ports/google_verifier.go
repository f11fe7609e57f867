package ports

import "context"

// GoogleIdentity é o payload já verificado de um ID token do Google
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleVerifier valida um ID token emitido pelo Google e devolve a
// identidade contida nele
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
