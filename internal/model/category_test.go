package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesClosedList(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 25)

	// The list is closed: returned slices are copies.
	cats[0] = "mutated"
	assert.NotEqual(t, "mutated", Categories()[0])

	assert.Contains(t, Categories(), CategoryUncategorized)
	assert.Contains(t, Categories(), CategoryIrrelevant)
	assert.Contains(t, Categories(), CategoryRecurringSavings)
}

func TestCoerceCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known category", input: "Paliwo", want: "Paliwo"},
		{name: "trailing space preserved from source", input: "Sport i hobby ", want: "Sport i hobby "},
		{name: "unknown coerces to fallback", input: "Krypto", want: CategoryUncategorized},
		{name: "empty coerces to fallback", input: "", want: CategoryUncategorized},
		{name: "trimmed variant of padded label is unknown", input: "Sport i hobby", want: CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceCategory(tt.input))
		})
	}
}

func TestAggregateSentinels(t *testing.T) {
	assert.False(t, AggregateCategory(CategoryIrrelevant))
	assert.False(t, AggregateCategory(CategoryRecurringSavings))
	assert.True(t, AggregateCategory("Paliwo"))
	assert.True(t, AggregateCategory(CategorySalary))

	assert.True(t, InflowCategory(CategorySalary))
	assert.True(t, InflowCategory(CategoryIncome))
	assert.True(t, InflowCategory(CategoryOtherIncome))
	assert.False(t, InflowCategory("Paliwo"))
}
