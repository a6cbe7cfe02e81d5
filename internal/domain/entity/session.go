package entity

// Techos de filas por documento.
const (
	FreeItemLimit    = 3
	PremiumItemLimit = 50
)

// Session identidad entregada por la puerta de sesión.
type Session struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Premium     bool   `json:"premium"`
}

// ItemLimit techo de filas por documento para la sesión.
func (s Session) ItemLimit() int {
	if s.Premium {
		return PremiumItemLimit
	}
	return FreeItemLimit
}
