package services

import (
	"context"
	"errors"
	"strings"

	"github.com/azamatleskhan01/fastdelivery/entity"
	"github.com/azamatleskhan01/fastdelivery/repository"

	"gorm.io/gorm"
)

type MarketService struct {
	DB       *gorm.DB
	Repo     *repository.ProductRepository
	UserRepo *repository.UserRepository
	Cache    *repository.ProductCache
}

func NewMarketService(db *gorm.DB, repo *repository.ProductRepository, userRepo *repository.UserRepository, cache *repository.ProductCache) *MarketService {
	return &MarketService{DB: db, Repo: repo, UserRepo: userRepo, Cache: cache}
}

// ListAvailable returns products open for purchase, via cache when warm.
func (s *MarketService) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	if products, ok := s.Cache.Get(ctx); ok {
		return products, nil
	}
	products, err := s.Repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, products)
	return products, nil
}

func (s *MarketService) Create(ctx context.Context, ownerID uint, name string, price float64, description string) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	p := &entity.Product{
		Name:        name,
		Price:       price,
		Description: description,
		OwnerID:     ownerID,
		Available:   true,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return p, nil
}

// Delete removes a listing; only administrators may do this.
func (s *MarketService) Delete(ctx context.Context, role string, productID uint) error {
	if role != "admin" {
		return ErrForbidden
	}
	affected, err := s.Repo.Delete(productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.Cache.Invalidate(ctx)
	return nil
}

// Purchase transfers the product to the buyer and moves its price between
// budgets. The product and both user rows are locked inside one
// transaction so two buyers cannot win the same listing.
func (s *MarketService) Purchase(ctx context.Context, buyerID, productID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.Repo.GetForUpdate(tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.OwnerID == buyerID {
			return ErrSelfPurchase
		}
		if !p.Available {
			return ErrUnavailable
		}

		// user rows are locked in ascending id order so two crossing
		// purchases cannot deadlock
		lowID, highID := buyerID, p.OwnerID
		if highID < lowID {
			lowID, highID = highID, lowID
		}
		low, err := s.UserRepo.GetForUpdate(tx, lowID)
		if err != nil {
			return err
		}
		high, err := s.UserRepo.GetForUpdate(tx, highID)
		if err != nil {
			return err
		}

		buyer, seller := low, high
		if buyer.ID != buyerID {
			buyer, seller = high, low
		}
		if buyer.Budget < p.Price {
			return ErrInsufficientFunds
		}

		if err := s.UserRepo.UpdateBudget(tx, buyer.ID, buyer.Budget-p.Price); err != nil {
			return err
		}
		if err := s.UserRepo.UpdateBudget(tx, seller.ID, seller.Budget+p.Price); err != nil {
			return err
		}
		return s.Repo.TransferOwner(tx, p.ID, buyerID)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}
