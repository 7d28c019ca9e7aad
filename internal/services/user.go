package services

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
	"kasirpos/internal/store"
)

// ErrInvalidCredentials is returned by Authenticate for a bad username or
// password; the two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService manages terminal users (admin/employee) in their own
// collection, with bcrypt-hashed passwords.
type UserService struct {
	col *store.Collection[models.User, *models.User]
}

func NewUserService(medium storage.Medium, key string) *UserService {
	return &UserService{col: store.NewCollection[models.User](medium, key)}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.col.All(ctx)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	all, err := s.col.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Username, username) {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Create hashes the password and stores the user. Role defaults to employee.
func (s *UserService) Create(ctx context.Context, username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if existing, err := s.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.Errorf("user %q already exists", username)
	}
	if role == "" {
		role = "employee"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	stampCreate(&user.CreatedAt, &user.UpdatedAt)
	return s.col.Add(ctx, user)
}

// Authenticate checks username/password and returns the user on success.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Seed creates the initial admin account when the user collection is empty.
// The password comes from SEED_ADMIN_PASSWORD; a hardcoded dev default is
// used with a warning if unset.
func (s *UserService) Seed(ctx context.Context) error {
	all, err := s.col.All(ctx)
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("WARNING: using default admin credentials. Set SEED_ADMIN_PASSWORD to override.")
	}
	_, err = s.Create(ctx, "admin", password, "admin")
	return err
}
