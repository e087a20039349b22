package enums

// ItemCategory selects the discount policy applied to a cart line.
type ItemCategory string

const (
	ItemCategoryNew        ItemCategory = "new"
	ItemCategoryRegular    ItemCategory = "regular"
	ItemCategorySecondFree ItemCategory = "second_free"
	ItemCategorySale       ItemCategory = "sale"
)

var validItemCategories = []ItemCategory{
	ItemCategoryNew,
	ItemCategoryRegular,
	ItemCategorySecondFree,
	ItemCategorySale,
}

// String implements fmt.Stringer.
func (c ItemCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ItemCategory.
func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}
