package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hikebook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hikebook",
			Name:      "bookings_created_total",
			Help:      "Bookings persisted, by channel (wizard or api).",
		},
		[]string{"channel"},
	)

	sessionFailovers = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hikebook",
			Name:      "session_store_failovers_total",
			Help:      "Times the session store switched to the in-memory fallback.",
		},
	)
)

// Register đăng ký metrics, gọi nhiều lần vẫn an toàn
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, sessionFailovers)
	})
}

func IncHTTP(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func IncBookingCreated(channel string) {
	bookingsCreated.WithLabelValues(channel).Inc()
}

func IncSessionFailover() {
	sessionFailovers.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
