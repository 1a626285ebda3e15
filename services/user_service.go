package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account validation errors surfaced to the HTTP boundary.
var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService is the in-memory account store backing the simulated
// authentication flow. Accounts are volatile and reset on restart; the
// optional delay mimics the latency of a real credential check.
type UserService struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
	delay   time.Duration
}

var (
	userService     *UserService
	userServiceOnce sync.Once
)

// NewUserService returns an empty account store. delay is applied to
// signup and login to simulate a remote credential check.
func NewUserService(delay time.Duration) *UserService {
	return &UserService{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
		delay:   delay,
	}
}

// InitUserService initializes the global user service.
func InitUserService(delay time.Duration) {
	userServiceOnce.Do(func() {
		userService = NewUserService(delay)
	})
}

// GetUserService returns the initialized user service.
func GetUserService() *UserService {
	InitUserService(0)
	return userService
}

// Signup registers a new account and returns a copy of the created user.
func (s *UserService) Signup(email, password, name string) (*models.User, error) {
	s.simulateLatency()

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		Avatar:       avatarURL(name),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.byEmail[email] = user
	s.byID[user.ID.String()] = user

	out := *user
	return &out, nil
}

// Login checks the credentials against the in-memory store and returns a
// copy of the account.
func (s *UserService) Login(email, password string) (*models.User, error) {
	s.simulateLatency()

	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	user, ok := s.byEmail[email]
	var snapshot models.User
	if ok {
		snapshot = *user
	}
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(snapshot.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &snapshot, nil
}

// GetByID looks an account up by its identifier and returns a copy.
func (s *UserService) GetByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// ProfileUpdate carries the updatable profile fields. Nil fields keep the
// current value.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateProfile applies a partial profile update and returns a copy of the
// updated user. Callers only ever see copies; the stored record is mutated
// exclusively under the service mutex.
func (s *UserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, errors.New("name cannot be empty")
		}
		user.Name = name
		user.Avatar = avatarURL(name)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Address != nil {
		user.Address = strings.TrimSpace(*update.Address)
	}

	out := *user
	return &out, nil
}

// Count reports the number of registered accounts.
func (s *UserService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}

func (s *UserService) simulateLatency() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// avatarURL builds the generated-avatar URL used by the storefront header.
func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0ea5e9&color=fff"
}
