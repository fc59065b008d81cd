package utils

import (
	"fmt"
	"strings"
)

// ValidateIATACode checks that code is a well-formed 3-letter IATA airport
// code and returns its canonical uppercase form
func ValidateIATACode(code string) (string, error) {
	formatted := strings.ToUpper(strings.TrimSpace(code))
	if len(formatted) != 3 {
		return "", fmt.Errorf("IATA code must be exactly 3 letters")
	}
	for _, r := range formatted {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("IATA code must contain only letters")
		}
	}
	return formatted, nil
}
