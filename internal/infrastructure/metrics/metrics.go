package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// Operation outcome label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds all Prometheus metrics. It implements usecase.Metrics.
type Metrics struct {
	// Account metrics
	AccountsOpened    *prometheus.CounterVec
	AccountBalance    *prometheus.GaugeVec
	AccountOperations *prometheus.CounterVec

	// Transfer metrics
	TransferAmount prometheus.Histogram
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_opened_total",
				Help:      "Total number of accounts opened by kind",
			},
			[]string{"kind"},
		),
		AccountBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "account_balance",
				Help:      "Current account balance",
			},
			[]string{"account_id", "kind"},
		),
		AccountOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_operations_total",
				Help:      "Total account operations by type and outcome",
			},
			[]string{"operation", "status"},
		),
		TransferAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_amount",
			Help:      "Transfer amounts",
			Buckets:   []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
	}
}

// AccountOpened counts a newly registered account.
func (m *Metrics) AccountOpened(kind domain.AccountKind) {
	m.AccountsOpened.WithLabelValues(string(kind)).Inc()
}

// OperationCompleted counts an operation by outcome.
func (m *Metrics) OperationCompleted(operation string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.AccountOperations.WithLabelValues(operation, status).Inc()
}

// TransferCompleted observes a successful transfer amount.
func (m *Metrics) TransferCompleted(amount decimal.Decimal) {
	m.TransferAmount.Observe(amount.InexactFloat64())
}

// BalanceChanged exports the latest known balance of an account.
func (m *Metrics) BalanceChanged(accountID string, kind domain.AccountKind, balance decimal.Decimal) {
	m.AccountBalance.WithLabelValues(accountID, string(kind)).Set(balance.InexactFloat64())
}

// WriteText writes everything g gathers in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
