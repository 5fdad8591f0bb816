package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		description string
		wantErr     error
	}{
		{"both present", "Widget", "A thing", nil},
		{"empty name", "", "A thing", ErrEmptyName},
		{"whitespace name", "   \t ", "A thing", ErrEmptyName},
		{"empty description", "Widget", "", ErrEmptyDescription},
		{"whitespace description", "Widget", "  ", ErrEmptyDescription},
		{"name checked first", "", "", ErrEmptyName},
		{"padded but non-empty", "  Widget  ", "  A thing  ", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.itemName, tc.description)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewItemTrims(t *testing.T) {
	it := NewItem(7, "  Widget ", "\tA thing  ")
	require.Equal(t, 7, it.ID)
	assert.Equal(t, "Widget", it.Name)
	assert.Equal(t, "A thing", it.Description)
}
