package dto

// GoogleLoginRequest é a requisição de login com ID token do Google
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// GoogleLoginResponse devolve o perfil autenticado e o JWT emitido
type GoogleLoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
