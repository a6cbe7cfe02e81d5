package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Snowflake genera IDs de documento únicos y crecientes dentro del proceso
// (y entre procesos con distinto nodeID).
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake crea el generador para el nodo dado (0..1023).
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("idgen: nodo %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// NextID siguiente ID en base 10.
func (s *Snowflake) NextID() string {
	return s.node.Generate().String()
}
