package entity

import "time"

// Customer entrada del directorio de clientes de una cuenta (solo para autocompletar).
type Customer struct {
	ID                string    `json:"id"`
	AccountID         string    `json:"account_id"`
	Name              string    `json:"name"`
	TaxRegistrationNo string    `json:"tax_registration_no,omitempty"`
	Address           string    `json:"address,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
