package invoice

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Numberer genera el número visible de un documento.
type Numberer interface {
	Next(prefix string, at time.Time) string
}

// GenerateDocumentNumber arma PREFIX-YYYYMMDD-NNN.
func GenerateDocumentNumber(prefix string, at time.Time, suffix int) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, at.Format("20060102"), suffix)
}

// RandomNumberer sufijo aleatorio 0–999 sin control de colisiones: dos
// documentos del mismo día pueden repetir número. Es una comodidad visual, no
// un identificador (el identificador es Document.ID).
type RandomNumberer struct {
	intN func(n int) int
}

// NewRandomNumberer usa el generador global de math/rand/v2.
func NewRandomNumberer() *RandomNumberer {
	return &RandomNumberer{intN: rand.IntN}
}

// NewRandomNumbererWith permite inyectar la fuente (tests).
func NewRandomNumbererWith(intN func(n int) int) *RandomNumberer {
	return &RandomNumberer{intN: intN}
}

// Next implementa Numberer.
func (r *RandomNumberer) Next(prefix string, at time.Time) string {
	return GenerateDocumentNumber(prefix, at, r.intN(1000))
}

// SequentialNumberer contador por día y por prefijo dentro del proceso; se
// reinicia al cambiar de día. El sufijo tiene tres dígitos: después del 999
// sigue 000, así que desde el documento 1000 del día puede repetir números.
type SequentialNumberer struct {
	mu   sync.Mutex
	day  string
	next map[string]int
}

// NewSequentialNumberer crea el contador.
func NewSequentialNumberer() *SequentialNumberer {
	return &SequentialNumberer{next: make(map[string]int)}
}

// Next implementa Numberer.
func (s *SequentialNumberer) Next(prefix string, at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := at.Format("20060102")
	if day != s.day {
		s.day = day
		s.next = make(map[string]int)
	}
	s.next[prefix] = (s.next[prefix] + 1) % 1000
	return GenerateDocumentNumber(prefix, at, s.next[prefix])
}
