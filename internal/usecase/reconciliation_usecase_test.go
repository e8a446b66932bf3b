package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

func TestReconcileAccount(t *testing.T) {
	t.Parallel()

	sender := joint(t, "acc-1", "150")
	recipient := savings(t, "acc-2", "0")

	if err := sender.Deposit(dec("25.10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sender.Transfer(recipient, dec("100")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReconciliationUseCase(newStubAccountRepository(sender, recipient))

	result, err := uc.ReconcileAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsReconciled || !result.Difference.IsZero() {
		t.Errorf("expected reconciled account, got %+v", result)
	}
	if !result.RecordedBalance.Equal(dec("75.10")) || !result.CalculatedBalance.Equal(dec("75.10")) {
		t.Errorf("unexpected balances %+v", result)
	}
	if result.LastChecked.IsZero() {
		t.Error("expected LastChecked to be set")
	}

	if _, err := uc.ReconcileAccount(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestReconcileAllAccounts(t *testing.T) {
	t.Parallel()

	a := savings(t, "acc-1", "10")
	b := savings(t, "acc-2", "20")

	uc := usecase.NewReconciliationUseCase(newStubAccountRepository(a, b))

	results, err := uc.ReconcileAllAccounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 || results[0].AccountID != "acc-1" || results[1].AccountID != "acc-2" {
		t.Fatalf("unexpected results %+v", results)
	}

	uc = usecase.NewReconciliationUseCase(&stubAccountRepository{listErr: errors.New("boom")})
	if _, err := uc.ReconcileAllAccounts(context.Background()); err == nil {
		t.Error("expected list error")
	}
}

func TestGenerateReconciliationReport(t *testing.T) {
	t.Parallel()

	a := savings(t, "acc-1", "500")
	b := joint(t, "acc-2", "500")

	if err := b.Transfer(a, dec("200")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReconciliationUseCase(newStubAccountRepository(a, b))

	report, err := uc.GenerateReconciliationReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalAccounts != 2 || report.ReconciledAccounts != 2 {
		t.Errorf("unexpected report %+v", report)
	}
	if len(report.Discrepancies) != 0 || !report.LedgerConsistent {
		t.Errorf("expected clean report, got %+v", report)
	}
	if report.CheckedAt.IsZero() {
		t.Error("expected CheckedAt to be set")
	}
}

func TestCheckLedgerConsistency_ReportsDifference(t *testing.T) {
	t.Parallel()

	a := savings(t, "acc-1", "500")
	b := savings(t, "acc-2", "0")

	if err := a.Transfer(b, dec("12.34")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReconciliationUseCase(newStubAccountRepository(a))

	err := uc.CheckLedgerConsistency(context.Background())
	if !errors.Is(err, usecase.ErrInconsistentLedger) {
		t.Fatalf("expected ErrInconsistentLedger, got %v", err)
	}
}

func TestGenerateReconciliationReport_LedgerErrors(t *testing.T) {
	t.Parallel()

	t.Run("inconsistency is reported, not returned", func(t *testing.T) {
		a := savings(t, "acc-1", "500")
		outsider := savings(t, "acc-2", "0")
		if err := a.Transfer(outsider, dec("1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := usecase.NewReconciliationUseCase(newStubAccountRepository(a))

		report, err := uc.GenerateReconciliationReport(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.LedgerConsistent || report.ReconciledAccounts != 1 {
			t.Errorf("expected inconsistent ledger with reconciled account, got %+v", report)
		}
	})

	t.Run("registry failure is returned", func(t *testing.T) {
		repo := newStubAccountRepository(savings(t, "acc-1", "500"))
		repo.listErr = errors.New("registry down")
		repo.failListFrom = 2

		uc := usecase.NewReconciliationUseCase(repo)

		report, err := uc.GenerateReconciliationReport(context.Background())
		if err == nil || err.Error() != "registry down" {
			t.Fatalf("expected registry error, got %v", err)
		}
		if report != nil {
			t.Errorf("expected nil report, got %+v", report)
		}
	})
}
