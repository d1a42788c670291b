package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/lougreen/dicelab/internal/common/uuid Generator

// Generator produces unique identifiers for games
type Generator interface {
	New() string
}

// Google implements the Generator interface using github.com/google/uuid
type Google struct{}

// NewGoogle creates a Generator backed by google/uuid
func NewGoogle() *Google {
	return &Google{}
}

// New returns a new UUID string
func (g *Google) New() string {
	return uuid.New().String()
}
