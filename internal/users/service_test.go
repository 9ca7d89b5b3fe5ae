package users_test

import (
	"context"
	"errors"
	"testing"

	"github.com/diefthyntis/Savasana/internal/apperr"
	"github.com/diefthyntis/Savasana/internal/users"
)

type fakeStore struct {
	byID    map[int64]*users.User
	deletes int
}

func newFakeStore(seed ...*users.User) *fakeStore {
	f := &fakeStore{byID: map[int64]*users.User{}}
	for _, u := range seed {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*users.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*users.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeStore) Insert(_ context.Context, u *users.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.byID, id)
	f.deletes++
	return nil
}

func TestService_Delete_PermissiveByDefault(t *testing.T) {
	store := newFakeStore(&users.User{ID: 1, Email: "owner@studio.com"})
	svc := users.NewService(store, false)

	// Owner enforcement off: any authenticated principal may delete.
	if err := svc.Delete(context.Background(), 1, "someone-else@studio.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.deletes != 1 {
		t.Fatalf("expected one delete, got %d", store.deletes)
	}
}

func TestService_Delete_OwnerEnforced(t *testing.T) {
	store := newFakeStore(&users.User{ID: 1, Email: "owner@studio.com"})
	svc := users.NewService(store, true)
	ctx := context.Background()

	err := svc.Delete(ctx, 1, "someone-else@studio.com")
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.deletes != 0 {
		t.Fatalf("forbidden delete must not write, got %d deletes", store.deletes)
	}

	if err := svc.Delete(ctx, 1, "OWNER@studio.com"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestService_Delete_Missing(t *testing.T) {
	svc := users.NewService(newFakeStore(), false)

	err := svc.Delete(context.Background(), 999, "anyone@studio.com")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_FindByID(t *testing.T) {
	store := newFakeStore(&users.User{ID: 2, Email: "u@studio.com", FirstName: "Jane"})
	svc := users.NewService(store, false)

	u, err := svc.FindByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if u.FirstName != "Jane" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.FindByID(context.Background(), 3); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
