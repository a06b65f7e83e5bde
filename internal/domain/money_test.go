package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "0 kr"},
		{49, "49 kr"},
		{249, "249 kr"},
		{1097, "1 097 kr"},
		{12345, "12 345 kr"},
		{1234567, "1 234 567 kr"},
		{-1097, "-1 097 kr"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}
