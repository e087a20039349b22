package enums

import "testing"

func TestItemCategoryIsValid(t *testing.T) {
	t.Parallel()

	for _, category := range []ItemCategory{ItemCategoryNew, ItemCategoryRegular, ItemCategorySecondFree, ItemCategorySale} {
		if !category.IsValid() {
			t.Fatalf("expected %q to be valid", category)
		}
	}

	for _, raw := range []string{"", "clearance", "SALE"} {
		if ItemCategory(raw).IsValid() {
			t.Fatalf("expected %q to be invalid", raw)
		}
	}
}
