package services

import (
	"errors"

	"github.com/azamatleskhan01/fastdelivery/entity"
	"github.com/azamatleskhan01/fastdelivery/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, RestRepo: rr}
}

type CartLine struct {
	Item     entity.CartItem `json:"item"`
	Subtotal float64         `json:"subtotal"`
}

type CartSummary struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// Add puts qty of a menu item into the user's cart. An existing line for
// the same menu item accumulates, clamped at the maximum quantity.
func (s *CartService) Add(userID, menuItemID uint, qty int) error {
	if qty < entity.MinCartQuantity || qty > entity.MaxCartQuantity {
		return ErrInvalidQuantity
	}

	if _, err := s.RestRepo.GetMenuItem(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		exist, err := s.CartRepo.FindLine(tx, userID, menuItemID)
		if err == nil {
			exist.Quantity += qty
			if exist.Quantity > entity.MaxCartQuantity {
				exist.Quantity = entity.MaxCartQuantity
			}
			return s.CartRepo.Save(tx, exist)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		line := &entity.CartItem{UserID: userID, MenuItemID: menuItemID, Quantity: qty}
		return s.CartRepo.Create(tx, line)
	})
}

// UpdateQuantity sets a line's quantity. Lines of other users look absent.
func (s *CartService) UpdateQuantity(userID, itemID uint, qty int) error {
	if qty < entity.MinCartQuantity || qty > entity.MaxCartQuantity {
		return ErrInvalidQuantity
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.UpdateQuantity(tx, userID, itemID, qty)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.Remove(tx, userID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// List returns the cart lines with per-line subtotals and the cart total.
func (s *CartService) List(userID uint) (*CartSummary, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	out := &CartSummary{Lines: make([]CartLine, 0, len(items))}
	for _, it := range items {
		sub := it.MenuItem.Price * float64(it.Quantity)
		out.Lines = append(out.Lines, CartLine{Item: it, Subtotal: sub})
		out.Total += sub
	}
	return out, nil
}
