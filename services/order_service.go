package services

import (
	"errors"

	"github.com/azamatleskhan01/fastdelivery/entity"
	"github.com/azamatleskhan01/fastdelivery/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// CreateFromCart turns the user's cart into an order in one transaction:
// the order row, one snapshot line per cart line, and the cart wipe either
// all commit or none do. The restaurant comes from the first cart line.
func (s *OrderService) CreateFromCart(userID uint, lat, lon float64) (*entity.Order, error) {
	if !validCoordinates(lat, lon) {
		return nil, ErrInvalidCoordinates
	}

	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, it := range items {
		total += it.MenuItem.Price * float64(it.Quantity)
	}

	order := &entity.Order{
		UserID:            userID,
		RestaurantID:      items[0].MenuItem.RestaurantID,
		TotalPrice:        total,
		DeliveryLatitude:  lat,
		DeliveryLongitude: lon,
		Status:            entity.OrderStatusCreated,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				MenuItemID:  it.MenuItemID,
				Quantity:    it.Quantity,
				PriceAtTime: it.MenuItem.Price,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		return s.CartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// StartDelivery moves the order created → in_transit for its owner.
func (s *OrderService) StartDelivery(userID, orderID uint) error {
	return s.transition(userID, orderID, entity.OrderStatusCreated, entity.OrderStatusInTransit)
}

// CompleteDelivery moves the order in_transit → completed for its owner.
func (s *OrderService) CompleteDelivery(userID, orderID uint) error {
	return s.transition(userID, orderID, entity.OrderStatusInTransit, entity.OrderStatusCompleted)
}

func (s *OrderService) transition(userID, orderID uint, from, to entity.OrderStatus) error {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if o.UserID != userID {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}
