package cart

import (
	"testing"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category enums.ItemCategory
		quantity int
		want     int
	}{
		{enums.ItemCategorySale, 500, 80},
		{enums.ItemCategorySale, 30, 73},
		{enums.ItemCategorySale, 10, 71},
		{enums.ItemCategorySale, 9, 70},
		{enums.ItemCategorySale, 1, 70},

		{enums.ItemCategoryNew, 20, 0},
		{enums.ItemCategoryNew, 10, 0},
		{enums.ItemCategoryNew, 1, 0},

		{enums.ItemCategorySecondFree, 500, 80},
		{enums.ItemCategorySecondFree, 30, 53},
		{enums.ItemCategorySecondFree, 10, 51},
		{enums.ItemCategorySecondFree, 9, 50},
		{enums.ItemCategorySecondFree, 2, 50},
		{enums.ItemCategorySecondFree, 1, 0},

		{enums.ItemCategoryRegular, 1, 0},
		{enums.ItemCategoryRegular, 9, 0},
		{enums.ItemCategoryRegular, 10, 1},
		{enums.ItemCategoryRegular, 500, 50},
		{enums.ItemCategoryRegular, 5000, 80},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountPercent(tt.category, tt.quantity), "%s x%d", tt.category, tt.quantity)
	}
}

func TestDiscountPercentFormulas(t *testing.T) {
	t.Parallel()

	for q := 1; q <= 1200; q++ {
		assert.Equal(t, 0, DiscountPercent(enums.ItemCategoryNew, q), "new x%d", q)
		assert.Equal(t, min(80, 70+q/10), DiscountPercent(enums.ItemCategorySale, q), "sale x%d", q)
		assert.Equal(t, min(80, q/10), DiscountPercent(enums.ItemCategoryRegular, q), "regular x%d", q)
		if q >= 2 {
			assert.Equal(t, min(80, 50+q/10), DiscountPercent(enums.ItemCategorySecondFree, q), "second_free x%d", q)
		}
	}
}

func TestDiscountPercentMonotonicAndCapped(t *testing.T) {
	t.Parallel()

	categories := []enums.ItemCategory{
		enums.ItemCategoryRegular,
		enums.ItemCategorySecondFree,
		enums.ItemCategorySale,
	}
	for _, category := range categories {
		prev := DiscountPercent(category, 1)
		for q := 2; q <= 2000; q++ {
			got := DiscountPercent(category, q)
			if got < prev {
				t.Fatalf("%s: discount dropped from %d to %d at quantity %d", category, prev, got, q)
			}
			if got > 80 {
				t.Fatalf("%s: discount %d above cap at quantity %d", category, got, q)
			}
			prev = got
		}
	}
}
