package validators

import (
	"regexp"
	"strings"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
)

// The two plate schemes in circulation: the legacy AAA9999 format and the
// Mercosul AAA9A99 format.
var (
	legacyPlate   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlate = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	nonAlnum      = regexp.MustCompile(`[^A-Z0-9]`)
)

// NormalizePlate upper-cases and strips everything that is not a letter or
// digit. Idempotent: normalizing an already-normalized plate is a no-op.
func NormalizePlate(plate string) string {
	return nonAlnum.ReplaceAllString(strings.ToUpper(plate), "")
}

// ValidatePlate checks a normalized plate against both schemes.
func ValidatePlate(plate string) error {
	if len(plate) != 7 {
		return apperr.Validation("Plate must have exactly 7 characters")
	}
	if !legacyPlate.MatchString(plate) && !mercosulPlate.MatchString(plate) {
		return apperr.Validation("Invalid plate format. Use ABC1234 or ABC1D23")
	}
	return nil
}

// ValidateName trims and checks the [2, 100] bound. Whitespace-only input is
// rejected even when the raw string is long enough.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 100 {
		return "", apperr.Validation("Name must be between 2 and 100 characters")
	}
	return trimmed, nil
}

