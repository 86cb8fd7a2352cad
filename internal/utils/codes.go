package utils

import (
	"strings"

	"github.com/google/uuid"
)

// requestCodeHexLen is the number of uuid hex digits kept in a tracking
// code. 16 digits is 64 bits of randomness, so duplicate codes stay out of
// reach at any realistic submission volume; the insert path still retries
// with a fresh code if the unique index ever disagrees.
const requestCodeHexLen = 16

// NewRequestCode mints the durable tracking code handed back after a
// submission: an HP- prefix plus 16 uppercased uuid hex digits.
func NewRequestCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "HP-" + strings.ToUpper(hex[:requestCodeHexLen])
}
