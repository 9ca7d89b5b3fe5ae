package sessions

import (
	"context"
	"fmt"

	"github.com/diefthyntis/Savasana/internal/apperr"
	"github.com/diefthyntis/Savasana/internal/users"
)

// Store is the session persistence surface; *Repository implements it.
type Store interface {
	GetByID(ctx context.Context, id int64) (*Session, error)
	FindAll(ctx context.Context) ([]Session, error)
	Insert(ctx context.Context, s *Session) error
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id int64) error
	AddParticipant(ctx context.Context, sessionID, userID int64) error
	RemoveParticipant(ctx context.Context, sessionID, userID int64) error
}

// UserStore is the slice of the user repository the roster needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

// Service carries the session CRUD and the roster state machine. Per
// (session, user) pair the roster has two states, participating or not,
// and both transitions reject when already in the target state.
type Service struct {
	sessions Store
	users    UserStore
}

func NewService(sessions Store, users UserStore) *Service {
	return &Service{sessions: sessions, users: users}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]Session, error) {
	return s.sessions.FindAll(ctx)
}

func (s *Service) Create(ctx context.Context, sess *Session) error {
	return s.sessions.Insert(ctx, sess)
}

// Update replaces the mutable fields of the session with the given id.
func (s *Service) Update(ctx context.Context, id int64, sess *Session) error {
	sess.ID = id
	return s.sessions.Update(ctx, sess)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.sessions.Delete(ctx, id)
}

// Participate adds the user to the session roster. Missing session or user
// is ErrNotFound; joining twice is ErrAlreadyParticipating, never a no-op.
func (s *Service) Participate(ctx context.Context, sessionID, userID int64) error {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	if contains(sess.Users, userID) {
		return apperr.ErrAlreadyParticipating
	}

	if err := s.sessions.AddParticipant(ctx, sessionID, userID); err != nil {
		return err
	}
	return nil
}

// NoLongerParticipate removes the user from the roster. Leaving a session
// the user never joined is ErrNotParticipating.
func (s *Service) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if !contains(sess.Users, userID) {
		return apperr.ErrNotParticipating
	}

	if err := s.sessions.RemoveParticipant(ctx, sessionID, userID); err != nil {
		return fmt.Errorf("leave session: %w", err)
	}
	return nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
