package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

// ParseNumber parses user-entered text into a finite number. Thousands
// separators are accepted. Empty, non-numeric and non-finite text returns
// ErrInvalidNumber; callers treat that as "no value", never as zero.
func ParseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("empty value: %w", entities.ErrInvalidNumber)
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, fmt.Errorf("%q: %w", text, entities.ErrInvalidNumber)
	}
	return v, nil
}
