package snake

import "errors"

var (
	// ErrConfigurationExhausted means rejection sampling for food or obstacle
	// placement ran out of attempts. The board is too crowded for the
	// configured clearances; the game cannot continue.
	ErrConfigurationExhausted = errors.New("snake: placement attempts exhausted")

	// ErrInvalidDirection is returned for input outside the four directions.
	// The game state is left unchanged.
	ErrInvalidDirection = errors.New("snake: invalid direction")
)
