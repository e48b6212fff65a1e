package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScanResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "liff_scan_resolutions_total",
		Help: "Total number of scan resolutions by outcome.",
	},
		[]string{"outcome"}, // booking_order | platform_order | failed
	)

	PlatformLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "liff_platform_lookups_total",
		Help: "Total number of upstream platform lookups by platform and result.",
	},
		[]string{"platform", "result"},
	)

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liff_orders_created_total",
		Help: "Total number of orders successfully created through the proxy.",
	})

	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "liff_webhook_events_total",
		Help: "Total number of LINE webhook events accepted by type.",
	},
		[]string{"type"},
	)
)
