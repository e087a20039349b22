package cart

import "github.com/angelmondragon/cart-receipt/pkg/enums"

// Observer receives cart events. Implementations must not retain or mutate
// cart state; they are called synchronously from the cart's own goroutine.
type Observer interface {
	ItemAdded(category enums.ItemCategory)
	ItemRejected(field string)
	LinePriced(category enums.ItemCategory, discountPercent int)
	TicketRendered(items int)
}

type noopObserver struct{}

func (noopObserver) ItemAdded(enums.ItemCategory)       {}
func (noopObserver) ItemRejected(string)                {}
func (noopObserver) LinePriced(enums.ItemCategory, int) {}
func (noopObserver) TicketRendered(int)                 {}
