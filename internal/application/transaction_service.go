package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	repo "github.com/wiratama/expense-tracker-api/internal/domain/repository"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
)

// TransactionService owns CRUD over transactions. Every operation takes
// the authenticated owner's id and never trusts one from the request body;
// scoping to that owner is pushed down into the repository queries.
type TransactionService struct {
	Repo   repo.TransactionRepository
	Logger *logrus.Logger
}

func NewTransactionService(repo repo.TransactionRepository, logger *logrus.Logger) *TransactionService {
	return &TransactionService{Repo: repo, Logger: logger}
}

// List returns all transactions owned by the caller in insertion order.
func (s *TransactionService) List(ctx context.Context, ownerID string) ([]entity.Transaction, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Create persists a new transaction stamped with the caller as owner.
// Zero amounts are allowed; they contribute to neither income nor expense.
func (s *TransactionService) Create(ctx context.Context, ownerID, text string, amount float64) (*entity.Transaction, error) {
	if text == "" {
		return nil, apperr.New(apperr.Validation, "Both text and amount are required")
	}
	t := &entity.Transaction{Text: text, Amount: amount, UserID: ownerID}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"transaction_id": t.ID, "user_id": ownerID}).Debug("transaction created")
	return t, nil
}

// UpdateInput uses pointers so presence is explicit: an amount of zero is
// a real update, not an omission.
type UpdateInput struct {
	Text   *string
	Amount *float64
}

// Update applies the supplied fields to an owned transaction.
func (s *TransactionService) Update(ctx context.Context, ownerID, id string, in UpdateInput) (*entity.Transaction, error) {
	if in.Text == nil && in.Amount == nil {
		return nil, apperr.New(apperr.Validation, "At least one field (text or amount) must be provided")
	}
	if in.Text != nil && *in.Text == "" {
		return nil, apperr.New(apperr.Validation, "Text cannot be empty")
	}

	t, err := s.Repo.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if in.Text != nil {
		t.Text = *in.Text
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes an owned transaction.
func (s *TransactionService) Delete(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteOwned(ctx, id, ownerID)
}
