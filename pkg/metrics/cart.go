package metrics

import (
	"github.com/angelmondragon/cart-receipt/pkg/enums"
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics counts cart activity. It satisfies cart.Observer.
type CartMetrics struct {
	added    *prometheus.CounterVec
	rejected *prometheus.CounterVec
	discount *prometheus.HistogramVec
	rendered prometheus.Counter
	lines    prometheus.Histogram
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	added := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Items accepted into a cart.",
	}, []string{"category"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_items_rejected_total",
		Help: "Item fields rejected by validation.",
	}, []string{"field"})
	discount := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_line_discount_percent",
		Help:    "Discount percent applied to priced lines.",
		Buckets: prometheus.LinearBuckets(0, 10, 9),
	}, []string{"category"})
	rendered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_tickets_rendered_total",
		Help: "Receipt tickets rendered.",
	})
	lines := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cart_ticket_lines",
		Help:    "Number of lines per rendered ticket.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	})
	reg.MustRegister(added, rejected, discount, rendered, lines)
	return &CartMetrics{
		added:    added,
		rejected: rejected,
		discount: discount,
		rendered: rendered,
		lines:    lines,
	}
}

func (c *CartMetrics) ItemAdded(category enums.ItemCategory) {
	if c == nil || c.added == nil {
		return
	}
	c.added.WithLabelValues(normalizeLabel(category.String())).Inc()
}

func (c *CartMetrics) ItemRejected(field string) {
	if c == nil || c.rejected == nil {
		return
	}
	c.rejected.WithLabelValues(normalizeLabel(field)).Inc()
}

func (c *CartMetrics) LinePriced(category enums.ItemCategory, discountPercent int) {
	if c == nil || c.discount == nil {
		return
	}
	c.discount.WithLabelValues(normalizeLabel(category.String())).Observe(float64(discountPercent))
}

func (c *CartMetrics) TicketRendered(items int) {
	if c == nil || c.rendered == nil {
		return
	}
	c.rendered.Inc()
	c.lines.Observe(float64(items))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
