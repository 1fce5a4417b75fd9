// Package catalog is the read-only boundary to the dish catalog. Order
// pricing resolves dishes through it and snapshots the price it returns;
// nothing in the billing core ever writes back through this boundary.
package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cafe-pos/apperr"
	"cafe-pos/models"
)

type DishInfo struct {
	ID    uint
	Name  string
	Price float64
}

// Reader resolves a dish identifier to its current name and price.
type Reader interface {
	ResolveDish(dishID uint) (DishInfo, error)
}

type gormReader struct {
	db *gorm.DB
}

// NewGormReader returns a Reader backed by the dishes table.
func NewGormReader(db *gorm.DB) Reader {
	return &gormReader{db: db}
}

func (r *gormReader) ResolveDish(dishID uint) (DishInfo, error) {
	var dish models.Dish
	if err := r.db.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DishInfo{}, fmt.Errorf("%w: dish %d", apperr.ErrNotFound, dishID)
		}
		return DishInfo{}, err
	}
	return DishInfo{ID: dish.ID, Name: dish.Name, Price: dish.Price}, nil
}
