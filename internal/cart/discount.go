package cart

import "github.com/angelmondragon/cart-receipt/pkg/enums"

const (
	maxDiscountPercent        = 80
	saleDiscountPercent       = 70
	secondFreeDiscountPercent = 50
	quantityBonusStep         = 10
)

// DiscountPercent returns the discount for a line of the given category and
// quantity, in whole percent between 0 and 80.
//
// New items never receive a discount. Every other category earns one extra
// point per 10 units on top of its base, capped at 80.
func DiscountPercent(category enums.ItemCategory, quantity int) int {
	base := 0
	switch category {
	case enums.ItemCategoryNew:
		return 0
	case enums.ItemCategoryRegular:
		base = 0
	case enums.ItemCategorySecondFree:
		if quantity > 1 {
			base = secondFreeDiscountPercent
		}
	case enums.ItemCategorySale:
		base = saleDiscountPercent
	}

	discount := base + quantity/quantityBonusStep
	if discount > maxDiscountPercent {
		return maxDiscountPercent
	}
	if discount < 0 {
		return 0
	}
	return discount
}
