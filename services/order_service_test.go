package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-pos/apperr"
	"cafe-pos/catalog"
	"cafe-pos/models"
	"cafe-pos/services"
)

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)

	order, err := orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 2},
	}, 0) // zero means default 1.0
	assert.NoError(t, err)
	assert.Equal(t, 1.0, order.DiscountRate)
	assert.Equal(t, 50000.0, order.Total)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 25000.0, order.Items[0].Price)

	// A later catalog price change must not touch the historical order
	assert.NoError(t, db.Model(&models.Dish{}).Where("id = ?", dish.ID).Update("price", 99000).Error)

	var reloaded models.Order
	assert.NoError(t, db.Preload("Items").First(&reloaded, order.ID).Error)
	assert.Equal(t, 50000.0, reloaded.Total)
	assert.Equal(t, 25000.0, reloaded.Items[0].Price)

	_, bill, err := tables.Checkout(table.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50000.0, bill.ConsumptionTotal)
}

func TestCreateOrderAppliesDiscount(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)

	// 4 x 25,000 = 100,000 before discount, 90,000 after
	order, err := orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 4},
	}, 0.9)
	assert.NoError(t, err)
	assert.InDelta(t, 90000, order.Total, 0.001)
	// Unit price snapshot stays undiscounted
	assert.Equal(t, 25000.0, order.Items[0].Price)
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)

	_, err = orders.CreateOrder(session.ID, nil, 1.0)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 0},
	}, 1.0)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: -3},
	}, 1.0)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 1},
	}, 1.5)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrderUnknownDish(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)

	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: 4242, Quantity: 1},
	}, 1.0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// The transaction rolled back: no order or item rows
	var orderCount, itemCount int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestCreateOrderUnknownSession(t *testing.T) {
	db := setupTestDB(t)
	_, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	_, err := orders.CreateOrder(777, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 1},
	}, 1.0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateOrderAgainstClosedSession(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)
	_, _, err = tables.Checkout(table.ID)
	assert.NoError(t, err)

	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 1},
	}, 1.0)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	var orderCount, itemCount int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)
	order, err := orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 2},
	}, 1.0)
	assert.NoError(t, err)

	updated, err := orders.UpdateStatus(order.ID, models.OrderStatusServed)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusServed, updated.Status)
	// Status moves never touch the frozen total
	assert.Equal(t, order.Total, updated.Total)

	_, err = orders.UpdateStatus(9999, models.OrderStatusServed)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListOrdersFilters(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)
	first, err := orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 1},
	}, 1.0)
	assert.NoError(t, err)
	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 2},
	}, 1.0)
	assert.NoError(t, err)

	_, err = orders.UpdateStatus(first.ID, models.OrderStatusServed)
	assert.NoError(t, err)

	all, err := orders.ListOrders(services.OrderFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	bySession, err := orders.ListOrders(services.OrderFilter{TableSessionID: session.ID})
	assert.NoError(t, err)
	assert.Len(t, bySession, 2)

	served, err := orders.ListOrders(services.OrderFilter{Status: models.OrderStatusServed})
	assert.NoError(t, err)
	assert.Len(t, served, 1)
	assert.Equal(t, first.ID, served[0].ID)

	none, err := orders.ListOrders(services.OrderFilter{TableSessionID: 555})
	assert.NoError(t, err)
	assert.Len(t, none, 0)
}
