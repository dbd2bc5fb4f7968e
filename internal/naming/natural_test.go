package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"chapter2.xhtml", "chapter10.xhtml", true},
		{"chapter10.xhtml", "chapter2.xhtml", false},
		{"main", "main-5", true},
		{"main.xhtml", "main-5.xhtml", false},
		{"backmatter.xhtml", "chapter1.xhtml", true},
		{"a", "a", false},
		{"chapter01", "chapter1", true},
		{"x9", "x10", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, NaturalLess(tt.a, tt.b))
		})
	}
}

func TestSortNatural(t *testing.T) {
	names := []string{"main-5", "chapter10", "main", "chapter2", "backmatter", "chapter1"}

	SortNatural(names)

	assert.Equal(t, []string{"backmatter", "chapter1", "chapter2", "chapter10", "main", "main-5"}, names)
}
