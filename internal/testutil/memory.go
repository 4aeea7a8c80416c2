// Package testutil provides in-memory repository implementations so
// services and handlers can be exercised without a database.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	"github.com/wiratama/expense-tracker-api/internal/domain/repository"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
)

type MemoryUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperr.New(apperr.AlreadyExists, "User already exists")
		}
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users = append(r.users, *u)
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "User not found")
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "User not found")
}

func (r *MemoryUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.users {
		if existing.ID == u.ID {
			u.UpdatedAt = time.Now()
			// email and password are preserved from the stored record
			updated := existing
			updated.Name = u.Name
			updated.Phone = u.Phone
			updated.UpdatedAt = u.UpdatedAt
			r.users[i] = updated
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "User not found")
}

// Delete is not part of the repository contract; it exists so tests can
// simulate an identity vanishing after a token was issued.
func (r *MemoryUserRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}

var _ repository.UserRepository = (*MemoryUserRepo)(nil)

type MemoryTransactionRepo struct {
	mu  sync.Mutex
	txs []entity.Transaction
}

func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{}
}

func notFoundOrUnauthorized() error {
	return apperr.New(apperr.NotFound, "Transaction not found or unauthorized")
}

func (r *MemoryTransactionRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entity.Transaction, 0)
	for _, t := range r.txs {
		if t.UserID == ownerID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *MemoryTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.txs = append(r.txs, *t)
	return nil
}

func (r *MemoryTransactionRepo) GetOwned(_ context.Context, id, ownerID string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.txs {
		if t.ID == id && t.UserID == ownerID {
			copied := t
			return &copied, nil
		}
	}
	return nil, notFoundOrUnauthorized()
}

func (r *MemoryTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.txs {
		if existing.ID == t.ID && existing.UserID == t.UserID {
			t.UpdatedAt = time.Now()
			r.txs[i] = *t
			return nil
		}
	}
	return notFoundOrUnauthorized()
}

func (r *MemoryTransactionRepo) DeleteOwned(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.txs {
		if t.ID == id && t.UserID == ownerID {
			r.txs = append(r.txs[:i], r.txs[i+1:]...)
			return nil
		}
	}
	return notFoundOrUnauthorized()
}

var _ repository.TransactionRepository = (*MemoryTransactionRepo)(nil)
