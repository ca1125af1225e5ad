package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travel_orders_created_total",
		Help: "The total number of travel orders created",
	})

	OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_order_transitions_total",
		Help: "The total number of committed order status transitions",
	}, []string{"action"})

	RejectedTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_order_rejected_transitions_total",
		Help: "The total number of transitions rejected by the state machine",
	}, []string{"action"})
)
