package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cafe-pos/apperr"
	"cafe-pos/catalog"
	"cafe-pos/models"
	"cafe-pos/utils"
)

// OrderService records consumption against open sessions. Orders are
// immutable once written: the unit prices and the total are snapshots
// taken at creation time, never recomputed from the catalog.
type OrderService struct {
	db      *gorm.DB
	catalog catalog.Reader
	locks   *TableLocker
}

func NewOrderService(db *gorm.DB, reader catalog.Reader, locks *TableLocker) *OrderService {
	return &OrderService{db: db, catalog: reader, locks: locks}
}

type OrderItemInput struct {
	DishID   uint `json:"dish_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// OrderFilter narrows ListOrders; zero values mean "no filter".
type OrderFilter struct {
	TableID        uint
	TableSessionID uint
	Status         string
	StartDate      *time.Time
	EndDate        *time.Time
}

// CreateOrder prices the items against the catalog, applies the discount
// and persists the order in one transaction. It takes the owning table's
// lock so a concurrent checkout cannot close the session between the
// open-check and the write.
func (s *OrderService) CreateOrder(sessionID uint, items []OrderItemInput, discountRate float64) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", apperr.ErrValidation)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive, got %d for dish %d",
				apperr.ErrValidation, item.Quantity, item.DishID)
		}
	}
	if discountRate == 0 {
		discountRate = 1.0
	}
	if discountRate < 0 || discountRate > 1 {
		return nil, fmt.Errorf("%w: discount rate %v out of range", apperr.ErrValidation, discountRate)
	}

	var probe models.TableSession
	if err := s.db.First(&probe, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %d", apperr.ErrNotFound, sessionID)
		}
		return nil, err
	}

	defer s.locks.Lock(probe.TableID).Unlock()

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Re-read under the lock: a checkout may have closed the session
		// between the probe above and here.
		var session models.TableSession
		if err := tx.First(&session, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session %d", apperr.ErrNotFound, sessionID)
			}
			return err
		}
		if !session.Open() {
			return fmt.Errorf("%w: session %d is already closed", apperr.ErrConflict, sessionID)
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			dish, err := s.catalog.ResolveDish(item.DishID)
			if err != nil {
				return err
			}
			total += dish.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				DishID:   dish.ID,
				Quantity: item.Quantity,
				Price:    dish.Price,
			})
		}
		total *= discountRate

		order = models.Order{
			TableID:        session.TableID,
			TableSessionID: session.ID,
			Status:         models.OrderStatusPending,
			DiscountRate:   discountRate,
			Total:          total,
			Items:          orderItems,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d created on session %d, total %s",
		order.ID, sessionID, utils.FormatCurrency(order.Total))
	return &order, nil
}

// UpdateStatus moves the workflow status of an order. It has no effect on
// billing and carries no transition constraints beyond existence.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", apperr.ErrValidation)
	}

	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}

// ListOrders returns orders matching the filter, newest first, with items
// and dish details included.
func (s *OrderService) ListOrders(filter OrderFilter) ([]models.Order, error) {
	q := s.db.Model(&models.Order{})
	if filter.TableID != 0 {
		q = q.Where("table_id = ?", filter.TableID)
	}
	if filter.TableSessionID != 0 {
		q = q.Where("table_session_id = ?", filter.TableSessionID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		q = q.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("created_at <= ?", *filter.EndDate)
	}

	var orders []models.Order
	err := q.Preload("Items.Dish").Order("created_at DESC").Find(&orders).Error
	return orders, err
}
