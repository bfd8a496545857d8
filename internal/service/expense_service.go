package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/storage"
)

// ExpenseService owns the personal (room-less) ledger. Same shape as the
// room ledger minus membership: any authenticated caller may write and read
// their own entries.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense records a personal expense for the caller. People is the
// caller-supplied cost-sharing denominator. Zero amount or people is
// rejected as missing, matching the shared-ledger contract.
func (s *ExpenseService) AddExpense(ctx context.Context, caller, description string, amount float64, people int) (*models.PersonalExpense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if people <= 0 {
		return nil, fmt.Errorf("%w: people is required", ErrValidation)
	}

	expense := &models.PersonalExpense{
		Username:    caller,
		Description: description,
		Amount:      amount,
		People:      people,
	}
	if err := s.store.AddPersonalExpense(ctx, expense); err != nil {
		slog.Error("AddPersonalExpense failed", "caller", caller, "error", err)
		return nil, err
	}

	slog.Info("Personal expense added", "caller", caller, "amount", amount, "people", people)
	return expense, nil
}

// History returns the caller's personal entries, newest first, with room
// names resolved for rows that carry one. This flat list is the single
// canonical personal-history contract.
func (s *ExpenseService) History(ctx context.Context, caller string) ([]models.PersonalExpense, error) {
	return s.store.ListPersonalExpenses(ctx, caller)
}
