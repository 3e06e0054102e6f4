package luhn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumber(t *testing.T) {
	valid := []string{
		"79927398713",
		"4539148803436467",
		"0",
		"18",
	}
	for _, num := range valid {
		assert.True(t, ValidateNumber(num), "expected %q to pass", num)
	}

	invalid := []string{
		"",
		"79927398714",
		"799277398713",
		"7992res8713",
		" 79927398713",
		"-79927398713",
	}
	for _, num := range invalid {
		assert.False(t, ValidateNumber(num), "expected %q to fail", num)
	}
}
