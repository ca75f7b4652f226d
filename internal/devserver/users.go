package devserver

import (
	"context"
	"net/mail"
	"strings"
	"sync"

	"github.com/MKhiriev/go-stock-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	user         models.User
	passwordHash []byte
}

// userStore keeps accounts in memory, keyed by lower-cased email.
type userStore struct {
	mu      sync.RWMutex
	byEmail map[string]*account
	byID    map[int64]*account
	nextID  int64
	cost    int
}

func newUserStore(cost int) *userStore {
	return &userStore{
		byEmail: make(map[string]*account),
		byID:    make(map[int64]*account),
		cost:    cost,
	}
}

func (s *userStore) register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.FullName)
	if _, err := mail.ParseAddress(email); err != nil || name == "" || req.Password == "" {
		return models.User{}, ErrInvalidUserData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return models.User{}, ErrEmailTaken
	}

	s.nextID++
	acc := &account{
		user: models.User{
			ID:       s.nextID,
			Email:    email,
			FullName: name,
			Company:  req.Company,
		},
		passwordHash: hash,
	}
	s.byEmail[email] = acc
	s.byID[acc.user.ID] = acc

	return acc.user, nil
}

// authenticate returns the user when password matches. Unknown emails and
// wrong passwords are indistinguishable.
func (s *userStore) authenticate(ctx context.Context, email, password string) (models.User, error) {
	s.mu.RLock()
	acc, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrWrongCredentials
	}
	return acc.user, nil
}

func (s *userStore) byUserID(ctx context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return acc.user, nil
}
