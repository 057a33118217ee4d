package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Ensure GreeterService implements the interface.
var _ driving.GreeterService = (*GreeterService)(nil)

// GreeterService builds greetings.
type GreeterService struct{}

// NewGreeterService creates a new greeter service.
func NewGreeterService() *GreeterService {
	return &GreeterService{}
}

// Greet implements driving.GreeterService.
// One leading '+' is accepted; any other sign is rejected.
func (s *GreeterService) Greet(name, ageText string) (domain.Greeting, error) {
	trimmed := strings.TrimSpace(ageText)
	age, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 32)
	if err != nil {
		return domain.Greeting{}, fmt.Errorf("%w: %q", domain.ErrInvalidAge, trimmed)
	}
	return domain.Greeting{
		Name: strings.TrimSpace(name),
		Age:  uint32(age),
	}, nil
}
