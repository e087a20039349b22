package cart

import (
	"strconv"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
	"github.com/angelmondragon/cart-receipt/pkg/money"
	"github.com/shopspring/decimal"
)

// Item is one validated cart entry. Items are never modified after AddItem.
type Item struct {
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
	Category  enums.ItemCategory
}

// Line is the priced view of an Item at a 1-based position in the cart.
type Line struct {
	Index           int
	Item            Item
	DiscountPercent int
	Total           decimal.Decimal
}

// PriceLine derives the discount and full-precision total for item.
func PriceLine(index int, item Item) Line {
	discount := DiscountPercent(item.Category, item.Quantity)
	total := item.UnitPrice.
		Mul(decimal.NewFromInt(int64(item.Quantity))).
		Mul(decimal.NewFromInt(int64(100 - discount))).
		Shift(-2)

	return Line{
		Index:           index,
		Item:            item,
		DiscountPercent: discount,
		Total:           total,
	}
}

// Cells renders the line as receipt table cells.
func (l Line) Cells() []string {
	return []string{
		strconv.Itoa(l.Index),
		l.Item.Title,
		money.Format(l.Item.UnitPrice),
		strconv.Itoa(l.Item.Quantity),
		discountCell(l.DiscountPercent),
		money.Format(l.Total),
	}
}

func discountCell(percent int) string {
	if percent == 0 {
		return "-"
	}
	return strconv.Itoa(percent) + "%"
}
