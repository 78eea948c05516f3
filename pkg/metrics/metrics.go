// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	// Бронирования
	BookingsCreated   prometheus.Counter
	BookingsCancelled prometheus.Counter
	SlotConflicts     prometheus.Counter
}

// New регистрирует метрики в registerer.
// В main передается prometheus.DefaultRegisterer, в тестах отдельный prometheus.NewRegistry().
func New(serviceName string, registerer prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Общее количество HTTP запросов",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Время обработки HTTP запросов в секундах",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Время выполнения SQL запросов в секундах",
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Количество ошибок SQL запросов",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections",
				Help:        "Состояние пула соединений с базой данных",
				ConstLabels: constLabels,
			},
			[]string{"state"}, // open, in_use, idle
		),
		BookingsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Количество созданных бронирований",
				ConstLabels: constLabels,
			},
		),
		BookingsCancelled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_cancelled_total",
				Help:        "Количество отмененных бронирований",
				ConstLabels: constLabels,
			},
		),
		SlotConflicts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "slot_conflicts_total",
				Help:        "Количество попыток забронировать занятый слот",
				ConstLabels: constLabels,
			},
		),
	}

	registerer.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.BookingsCreated,
		m.BookingsCancelled,
		m.SlotConflicts,
	)

	return m
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveQuery записывает длительность SQL запроса
func (m *Metrics) ObserveQuery(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetPoolStats обновляет состояние пула соединений
func (m *Metrics) SetPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) IncBookingsCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelled.Inc()
}

func (m *Metrics) IncSlotConflicts() {
	if m == nil {
		return
	}
	m.SlotConflicts.Inc()
}
