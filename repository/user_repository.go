package repository

import (
	"github.com/azamatleskhan01/fastdelivery/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsernameOrEmail(username, email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count, err
}

// GetForUpdate locks the user row for the duration of tx.
func (r *UserRepository) GetForUpdate(tx *gorm.DB, id uint) (*entity.User, error) {
	var u entity.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateBudget(tx *gorm.DB, id uint, budget float64) error {
	return tx.Model(&entity.User{}).Where("id = ?", id).Update("budget", budget).Error
}
