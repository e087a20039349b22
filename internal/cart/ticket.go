package cart

import (
	"strconv"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
	"github.com/angelmondragon/cart-receipt/pkg/money"
	"github.com/angelmondragon/cart-receipt/pkg/table"
)

// EmptyTicket is returned by FormatTicket when the cart has no items.
const EmptyTicket = "No items."

var (
	ticketHeader = []string{"#", "Item", "Price", "Quan.", "Discount", "Total"}
	ticketAlign  = []enums.Alignment{
		enums.AlignmentRight,
		enums.AlignmentLeft,
		enums.AlignmentRight,
		enums.AlignmentRight,
		enums.AlignmentRight,
		enums.AlignmentRight,
	}
)

// FormatTicket prices the current contents and renders the receipt table.
func (c *Cart) FormatTicket() string {
	if len(c.items) == 0 {
		return EmptyTicket
	}

	lines := c.Lines()
	body := make([][]string, 0, len(lines))
	for _, line := range lines {
		c.observer.LinePriced(line.Item.Category, line.DiscountPercent)
		body = append(body, line.Cells())
	}

	footer := []string{
		strconv.Itoa(len(lines)),
		"", "", "", "",
		money.Format(sumLines(lines)),
	}

	c.observer.TicketRendered(len(lines))
	return table.Render(ticketHeader, body, footer, ticketAlign)
}
