package metrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry, "gobank")
	require.NotNil(t, m.AccountsOpened)
	require.NotNil(t, m.TransferAmount)

	m.AccountOpened(domain.KindSavings)
	m.TransferCompleted(decimal.NewFromInt(200))

	count, err := testutil.GatherAndCount(registry, "gobank_accounts_opened_total", "gobank_transfer_amount")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Recording(t *testing.T) {
	m := New(prometheus.NewRegistry(), "gobank")

	m.AccountOpened(domain.KindJoint)
	m.AccountOpened(domain.KindJoint)
	m.OperationCompleted("deposit", nil)
	m.OperationCompleted("withdraw", domain.ErrInsufficientFunds)
	m.OperationCompleted("withdraw", errors.New("boom"))
	m.BalanceChanged("123456", domain.KindSavings, decimal.RequireFromString("1000.50"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.AccountsOpened.WithLabelValues("joint")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AccountOperations.WithLabelValues("deposit", StatusSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.AccountOperations.WithLabelValues("withdraw", StatusError)), 0)
	assert.InDelta(t, 1000.50, testutil.ToFloat64(m.AccountBalance.WithLabelValues("123456", "savings")), 1e-9)
}

func TestWriteText(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry, "gobank")
	m.AccountOpened(domain.KindChecking)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, registry))

	out := buf.String()
	assert.Contains(t, out, "# TYPE gobank_accounts_opened_total counter")
	assert.Contains(t, out, `gobank_accounts_opened_total{kind="checking"} 1`)
}
