package dto

// SignUpRequest entrada para registro.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin client"`
}

// SignInRequest entrada para login.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse salida de login con tokens.
type SignInResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshRequest entrada para renovar el access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse salida con el nuevo access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// SignOutRequest entrada para cerrar sesión (revoca el refresh token).
type SignOutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
