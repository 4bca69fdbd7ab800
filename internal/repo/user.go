package repo

import (
	"errors"

	"gorm.io/gorm"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/auth"
	"synthesistalk-backend/internal/models"
)

type UserRepo struct {
	db *gorm.DB
}

type UserRepoInterface interface {
	Create(email, password string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

func NewUserRepository(db *gorm.DB) UserRepoInterface {
	return &UserRepo{db: db}
}

// Create registers a new account. The password is bcrypt-hashed before it
// touches the database. Duplicate email (case-sensitive exact match, as
// the unique index compares) is a Conflict.
func (r *UserRepo) Create(email, password string) (*models.User, error) {
	var existing models.User
	err := r.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperr.New(apperr.CodeConflict, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, HashedPassword: hashed}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
