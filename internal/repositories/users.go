package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *models.User) error {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	return repo.db.WithContext(ctx).Create(user).Error
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := repo.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) UpdateLastLogin(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", id).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
