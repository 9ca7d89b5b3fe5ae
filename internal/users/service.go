package users

import (
	"context"
	"strings"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

// Store is the persistence surface the user service needs. *Repository
// implements it against Postgres.
type Store interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store Store

	// enforceOwnerDelete turns on the owner-match check on Delete. The
	// historical API shipped with the check disabled, so the default is
	// permissive; see ENFORCE_OWNER_DELETE.
	enforceOwnerDelete bool
}

func NewService(store Store, enforceOwnerDelete bool) *Service {
	return &Service{store: store, enforceOwnerDelete: enforceOwnerDelete}
}

func (s *Service) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.store.GetByID(ctx, id)
}

// Delete removes the account with the given id. principalEmail is the
// authenticated caller; when owner enforcement is on, deleting someone
// else's account fails with ErrForbidden.
func (s *Service) Delete(ctx context.Context, id int64, principalEmail string) error {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.enforceOwnerDelete && !strings.EqualFold(u.Email, principalEmail) {
		return apperr.ErrForbidden
	}
	return s.store.Delete(ctx, id)
}
