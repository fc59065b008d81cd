package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIATACode(t *testing.T) {
	code, err := ValidateIATACode("jfk")
	assert.NoError(t, err)
	assert.Equal(t, "JFK", code)

	code, err = ValidateIATACode("  lax ")
	assert.NoError(t, err)
	assert.Equal(t, "LAX", code)

	for _, invalid := range []string{"", "JF", "JFKX", "J1K", "jf-"} {
		_, err := ValidateIATACode(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}
