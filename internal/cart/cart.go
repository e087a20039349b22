// Package cart holds line items in insertion order, prices them and renders
// the receipt ticket.
package cart

import (
	"maps"
	"slices"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Params configures a Cart.
type Params struct {
	// Observer is notified about additions, rejections and rendering. Optional.
	Observer Observer
}

// Cart is an ordered collection of validated items. It is not safe for
// concurrent use.
type Cart struct {
	id       uuid.UUID
	items    []Item
	observer Observer
}

func New(params Params) *Cart {
	observer := params.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	return &Cart{
		id:       uuid.New(),
		observer: observer,
	}
}

// ID identifies the cart in logs.
func (c *Cart) ID() uuid.UUID {
	return c.id
}

// AddItem validates the input and appends a new item. A rejected item
// leaves the cart unchanged and yields a CodeValidation error.
func (c *Cart) AddItem(title string, unitPrice decimal.Decimal, quantity int, category enums.ItemCategory) error {
	input := itemInput{
		Title:     title,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Category:  category,
	}
	if verr := validateItem(input); verr != nil {
		if fields, ok := verr.Details().(map[string]string); ok {
			for _, field := range slices.Sorted(maps.Keys(fields)) {
				c.observer.ItemRejected(field)
			}
		}
		return verr
	}

	c.items = append(c.items, Item{
		Title:     title,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Category:  category,
	})
	c.observer.ItemAdded(category)
	return nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lines prices every item against the current contents.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.items))
	for i, item := range c.items {
		lines = append(lines, PriceLine(i+1, item))
	}
	return lines
}

// Total is the full-precision sum of all line totals.
func (c *Cart) Total() decimal.Decimal {
	return sumLines(c.Lines())
}

func sumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return total
}
