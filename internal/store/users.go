package store

import (
	"fmt"

	"github.com/worldmapx/worldmapx-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserProvider defines the user operations consumed by the API layer.
type UserProvider interface {
	GetUser(id int) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(username, password string) (models.User, error)
}

// GetUser retrieves a single user by ID.
func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// GetUserByUsername retrieves the first user with the given username.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser creates a new user, hashing their password.
func (s *Store) CreateUser(username, password string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: string(hashed),
	}
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}
