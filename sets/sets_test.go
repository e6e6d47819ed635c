// Package sets_test contains tests for the sets package.
package sets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/wrapkit/sets"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "duplicates removed, first occurrence order kept",
			input:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "already unique",
			input:    []string{"x", "y"},
			expected: []string{"x", "y"},
		},
		{
			name:     "empty",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sets.Dedupe(tc.input))
		})
	}
}

func TestDuplicates(t *testing.T) {
	got := sets.Duplicates([]string{"a", "b", "a", "c", "b", "a"})
	assert.ElementsMatch(t, []string{"a", "b"}, got)

	assert.Empty(t, sets.Duplicates([]string{"a", "b", "c"}))
}

func TestBinaryOperations(t *testing.T) {
	valid := []string{"yellow", "red", "blue", "green", "black"}
	input := []string{"red", "brown"}

	t.Run("intersect", func(t *testing.T) {
		assert.Equal(t, []string{"red"}, sets.Intersect(input, valid))
	})

	t.Run("difference", func(t *testing.T) {
		assert.Equal(t, []string{"brown"}, sets.Difference(input, valid))
	})

	t.Run("symmetric difference", func(t *testing.T) {
		got := sets.SymmetricDifference(input, valid)
		assert.ElementsMatch(t, []string{"brown", "yellow", "blue", "green", "black"}, got)
	})

	t.Run("union", func(t *testing.T) {
		got := sets.Union(input, valid)
		assert.ElementsMatch(t, []string{"red", "brown", "yellow", "blue", "green", "black"}, got)
		// first-occurrence order: input elements lead
		assert.Equal(t, "red", got[0])
		assert.Equal(t, "brown", got[1])
	})
}

func TestUnionDeduplicates(t *testing.T) {
	got := sets.Union([]int{1, 2}, []int{2, 3}, []int{3, 4})
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestContainmentPredicates(t *testing.T) {
	valid := []string{"yellow", "red", "blue", "green", "black"}

	assert.False(t, sets.IsSubset([]string{"red", "brown"}, valid))
	assert.True(t, sets.IsSubset([]string{"red", "blue"}, valid))
	assert.True(t, sets.IsSubset(nil, valid), "empty set is a subset of anything")

	assert.True(t, sets.IsSuperset(valid, []string{"red"}))
	assert.False(t, sets.IsSuperset(valid, []string{"red", "brown"}))
}

func TestIsDisjoint(t *testing.T) {
	valid := []string{"yellow", "red", "blue"}

	assert.False(t, sets.IsDisjoint([]string{"red", "brown"}, valid))
	assert.True(t, sets.IsDisjoint([]string{"brown", "pink"}, valid))
	assert.True(t, sets.IsDisjoint(nil, valid))
}
