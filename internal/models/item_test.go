package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"food", CategoryFood, false},
		{"SUPPLIES", CategorySupplies, false},
		{" Book ", CategoryBook, false},
		{"toys", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCategory))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("high")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	p, err = ParsePriority("Normal")
	require.NoError(t, err)
	assert.Equal(t, PriorityNormal, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestCategoriesAreValid(t *testing.T) {
	assert.Len(t, Categories(), 3)
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.False(t, Category("food").Valid(), "lower-case names are not stored values")
}

func TestItemWithDone(t *testing.T) {
	orig := Item{
		ID:          7,
		Title:       "Milk",
		Description: "2 litres",
		Price:       "1.99",
		CreateDate:  "Wed Oct 15 10:00:00 UTC 2026",
		Priority:    PriorityNormal,
		Category:    CategoryFood,
	}

	done := orig.WithDone(true)

	assert.True(t, done.IsDone)
	assert.False(t, orig.IsDone, "original must not be modified")

	done.IsDone = false
	assert.Equal(t, orig, done, "only IsDone may differ")
	assert.Equal(t, 7, orig.GetID())
}
