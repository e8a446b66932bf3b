package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

func TestHistoryUseCase_GetHistory(t *testing.T) {
	acc := savings(t, "acc-1", "0")
	for i := 0; i < 5; i++ {
		if err := acc.Deposit(dec("10")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	uc := usecase.NewHistoryUseCase(newStubAccountRepository(acc))

	records, err := uc.GetHistory(context.Background(), usecase.GetHistoryInput{AccountID: "acc-1", Limit: 2, Offset: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Seq != 4 || records[1].Seq != 5 {
		t.Errorf("expected records 4 and 5, got %d and %d", records[0].Seq, records[1].Seq)
	}

	if _, err := uc.GetHistory(context.Background(), usecase.GetHistoryInput{AccountID: "missing"}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestHistoryUseCase_GetHistoryLines(t *testing.T) {
	sender := savings(t, "123456", "1000")
	recipient := savings(t, "987654", "1500")

	if err := sender.Transfer(recipient, dec("200")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewHistoryUseCase(newStubAccountRepository(sender, recipient))

	lines, err := uc.GetHistoryLines(context.Background(), "987654")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Deposit: +200.00", "Transfer: +200.00 from 123456"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestHistoryUseCase_GetHistoricalBalance(t *testing.T) {
	acc := savings(t, "acc-1", "100")
	before := time.Now().UTC().Add(-time.Hour)

	if err := acc.Deposit(dec("50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewHistoryUseCase(newStubAccountRepository(acc))

	balance, err := uc.GetHistoricalBalance(context.Background(), "acc-1", before)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(dec("100")) {
		t.Errorf("expected opening balance 100, got %s", balance)
	}

	balance, err = uc.GetHistoricalBalance(context.Background(), "acc-1", time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(dec("150")) {
		t.Errorf("expected balance 150, got %s", balance)
	}
}
