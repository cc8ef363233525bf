package sim

import (
	"errors"
	"fmt"
)

// Grid defaults.
const (
	GridWidth  = 40
	GridHeight = 30
)

// Pacing and scoring.
const (
	BaseRate      = 5.0  // logical steps per second at round start
	RateStep      = 0.25 // added per food eaten
	PointsPerFood = 10
)

var (
	StartCell    = Cell{X: 5, Y: 5}
	StartHeading = Right
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrGridFull      = errors.New("grid full")
)

// Config parameterises a round.
type Config struct {
	Width, Height int
	Start         Cell
	Heading       Direction
	BaseRate      float64
	RateStep      float64
	PointsPerFood int

	// MaxCatchUp caps logical steps per frame. Zero runs every due step.
	MaxCatchUp int
}

// DefaultConfig returns the standard 40x30 game.
func DefaultConfig() Config {
	return Config{
		Width:         GridWidth,
		Height:        GridHeight,
		Start:         StartCell,
		Heading:       StartHeading,
		BaseRate:      BaseRate,
		RateStep:      RateStep,
		PointsPerFood: PointsPerFood,
	}
}

// Validate reports the first unusable field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Width*c.Height < 2:
		return fmt.Errorf("%w: grid %dx%d leaves no room for food", ErrInvalidConfig, c.Width, c.Height)
	case c.Start.X < 0 || c.Start.X >= c.Width || c.Start.Y < 0 || c.Start.Y >= c.Height:
		return fmt.Errorf("%w: start cell (%d,%d) outside grid", ErrInvalidConfig, c.Start.X, c.Start.Y)
	case int(c.Heading) >= len(offsets):
		return fmt.Errorf("%w: heading %d", ErrInvalidConfig, c.Heading)
	case c.BaseRate <= 0:
		return fmt.Errorf("%w: base rate %v", ErrInvalidConfig, c.BaseRate)
	case c.RateStep < 0:
		return fmt.Errorf("%w: rate step %v", ErrInvalidConfig, c.RateStep)
	case c.PointsPerFood < 0:
		return fmt.Errorf("%w: points per food %d", ErrInvalidConfig, c.PointsPerFood)
	case c.MaxCatchUp < 0:
		return fmt.Errorf("%w: max catch-up %d", ErrInvalidConfig, c.MaxCatchUp)
	}
	return nil
}
