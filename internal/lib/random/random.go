package random

import (
	"fmt"
	"math/rand"
)

const codePrefix = "PB"

// NewConfirmationCode returns a human-readable booking code in the form
// PB-NNN-XXX: a three-digit zero-padded number and three uppercase letters.
// Uniqueness is enforced by the database, not here.
func NewConfirmationCode() string {
	digits := rand.Intn(1000)

	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + rand.Intn(26))
	}

	return fmt.Sprintf("%s-%03d-%s", codePrefix, digits, letters)
}
