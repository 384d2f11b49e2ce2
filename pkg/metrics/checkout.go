package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Orders placed, by payment method
	OrdersPlaced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_orders_placed_total",
		Help: "Total number of orders placed",
	}, []string{"payment_method"})

	// Checkout attempts rejected before an order row was written
	CheckoutRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_rejected_total",
		Help: "Checkout attempts rejected, by reason",
	}, []string{"reason"})

	OrderInsertRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_order_insert_retries_total",
		Help: "Order insert attempts that timed out",
	})

	CheckoutLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_latency_seconds",
		Help:    "Latency of the order placement pipeline",
		Buckets: prometheus.DefBuckets,
	})

	OrdersCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_cancelled_total",
		Help: "Orders cancelled by customers",
	})
)

func Init() {
	prometheus.MustRegister(
		OrdersPlaced,
		CheckoutRejected,
		OrderInsertRetries,
		CheckoutLatency,
		OrdersCancelled,
	)
}
