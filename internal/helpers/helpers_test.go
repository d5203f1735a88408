package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	assert.True(t, Empty[int]().IsEmpty())
	assert.True(t, Some(3).HasValue())
	assert.Equal(t, 3, Some(3).Value())
}

func TestFilterSlice(t *testing.T) {
	evens := FilterSlice([]int{1, 2, 3, 4}, func(x int) bool {
		return x%2 == 0
	})
	assert.Equal(t, []int{2, 4}, evens)
}

func TestFindInSlice(t *testing.T) {
	found := FindInSlice([]string{"a", "b"}, func(s string) bool {
		return s == "b"
	})
	assert.Equal(t, "b", found.Value())

	missing := FindInSlice([]string{"a", "b"}, func(s string) bool {
		return s == "z"
	})
	assert.True(t, missing.IsEmpty())
}

func TestChoose(t *testing.T) {
	picked := Choose(DefaultRand, []int{7, 8, 9})
	assert.Contains(t, []int{7, 8, 9}, picked)
}
