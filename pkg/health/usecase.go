package health

import (
	"context"
	"fmt"
)

// Checker is one dependency probe contributing to readiness.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase reports whether the service can take traffic.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers; all must pass for readiness.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}
