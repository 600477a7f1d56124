package repository

import (
	"github.com/azamatleskhan01/fastdelivery/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the user's cart lines in insertion order.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

// FindLine returns the existing (user, menu item) line, if any.
func (r *CartRepository) FindLine(tx *gorm.DB, userID, menuItemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) Save(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

// UpdateQuantity is scoped by user_id so a foreign line looks absent.
func (r *CartRepository) UpdateQuantity(tx *gorm.DB, userID, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

// Cart rows are deleted for real: a soft-deleted row would keep holding
// the (user_id, menu_item_id) unique index and block re-adding the item.
func (r *CartRepository) Remove(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Unscoped().Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
