package repository

import (
	"github.com/azamatleskhan01/fastdelivery/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

func (r *ProductRepository) ListAvailable() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("available = ?", true).Order("id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Product{}, id)
	return res.RowsAffected, res.Error
}

// GetForUpdate locks the product row so concurrent purchases serialize.
func (r *ProductRepository) GetForUpdate(tx *gorm.DB, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) TransferOwner(tx *gorm.DB, productID, buyerID uint) error {
	return tx.Model(&entity.Product{}).
		Where("id = ?", productID).
		Update("owner_id", buyerID).Error
}
