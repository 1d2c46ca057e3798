package repositories

import (
	"errors"
	"fmt"

	"stoq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("%w: create user: %v", ErrStorage, err)
	}
	return nil
}

func (r *GORMUserRepository) getBy(field, value string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, field+" = ?", value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: get user by %s: %v", ErrStorage, field, err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getBy("username", username)
}

// GetByEmail retrieves a user by email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getBy("email", email)
}

// GetByID retrieves a user by id.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	return r.getBy("id", id)
}
