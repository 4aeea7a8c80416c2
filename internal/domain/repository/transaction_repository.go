package repository

import (
	"context"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence.
// Every read and write that addresses an existing record is keyed by
// (id, ownerID) so that a record owned by someone else is
// indistinguishable from one that does not exist.
type TransactionRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Transaction, error)
	Create(ctx context.Context, t *entity.Transaction) error
	GetOwned(ctx context.Context, id, ownerID string) (*entity.Transaction, error)
	Update(ctx context.Context, t *entity.Transaction) error
	DeleteOwned(ctx context.Context, id, ownerID string) error
}
