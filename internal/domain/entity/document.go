package entity

import "time"

// DocumentHeader campos de cabecera capturados por la presentación.
// Collect copia solo los relevantes para el tipo.
type DocumentHeader struct {
	CustomerName string            `json:"customer_name"`
	Fields       map[string]string `json:"fields,omitempty"`
}

// Document instantánea inmutable de un documento guardado, previsualizado o impreso.
type Document struct {
	ID           string            `json:"id"`
	Number       string            `json:"number"`
	Kind         DocumentKind      `json:"kind"`
	CreatedAt    time.Time         `json:"created_at"`
	CustomerName string            `json:"customer_name"`
	Fields       map[string]string `json:"fields,omitempty"`
	Items        []LineItem        `json:"items"`
	Totals       Totals            `json:"totals"`
	Author       Session           `json:"author"`
}
