package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse identidad de la sesión (sin credenciales).
type SessionResponse struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Premium     bool   `json:"premium"`
	ItemLimit   int    `json:"item_limit"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
