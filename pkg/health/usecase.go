package health

import "context"

// Checker probes one external dependency of the board.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase answers whether the service can take traffic.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService composes checkers; the first failure makes the whole
// service not ready.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}
