package services

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Ensure ManipulatorService implements the interface.
var _ driving.ManipulatorService = (*ManipulatorService)(nil)

// ManipulatorService reverses and upper-cases sentences.
type ManipulatorService struct{}

// NewManipulatorService creates a new manipulator service.
func NewManipulatorService() *ManipulatorService {
	return &ManipulatorService{}
}

// Transform implements driving.ManipulatorService.
// Upper-casing uses full Unicode case mapping, so "ß" becomes "SS".
func (s *ManipulatorService) Transform(sentence string) domain.Sentence {
	trimmed := strings.TrimSpace(sentence)

	runes := []rune(trimmed)
	slices.Reverse(runes)

	// A Caser keeps state between calls, so each call gets its own.
	upper := cases.Upper(language.Und)

	return domain.Sentence{
		Original:    trimmed,
		Transformed: upper.String(string(runes)),
	}
}
