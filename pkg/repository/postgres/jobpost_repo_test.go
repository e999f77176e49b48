package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"engineer", "engineer"},
		{"50%", `50\%`},
		{"_intern", `\_intern`},
		{`C:\jobs`, `C:\\jobs`},
		{`100%_done\`, `100\%\_done\\`},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
