package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
)

func TestListRegistered(t *testing.T) {
	assert.Equal(t, []string{"lower", "sequence", "slug", "template"}, ListRegistered())
}

func TestCreate_Unknown(t *testing.T) {
	_, err := Create("reverse", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrUnknownConvention))
	assert.Contains(t, err.Error(), "sequence")
}

func TestRegister_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("sequence", func(opts Options) (Convention, error) { return NewLower(), nil })
	})
}

func TestCreate_Builtins(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"sequence", Options{Prefix: "section-", Width: 3}},
		{"slug", Options{}},
		{"lower", Options{}},
		{"template", Options{Pattern: "{{ .Stem }}{{ .Ext }}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Create(tt.name, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.name, c.Name())
			assert.NotEmpty(t, c.Description())
		})
	}
}
