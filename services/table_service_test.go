package services_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cafe-pos/apperr"
	"cafe-pos/catalog"
	"cafe-pos/models"
	"cafe-pos/services"
)

func TestBookOpensSessionAndOccupiesTable(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	svc := services.NewTableService(db, services.NewTableLocker())

	session, err := svc.Book(table.ID)
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, table.ID, session.TableID)
	assert.Nil(t, session.EndTime)
	assert.False(t, session.StartTime.IsZero())

	// Status cache and open-session row must agree
	var reloaded models.Table
	assert.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableStatusOccupied, reloaded.Status)
	assert.EqualValues(t, 1, countOpenSessions(t, db, table.ID))
}

func TestBookUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	seedVenue(t, db)
	svc := services.NewTableService(db, services.NewTableLocker())

	_, err := svc.Book(9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBookTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	svc := services.NewTableService(db, services.NewTableLocker())

	_, err := svc.Book(table.ID)
	assert.NoError(t, err)

	_, err = svc.Book(table.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.EqualValues(t, 1, countOpenSessions(t, db, table.ID))
}

// Two concurrent bookings of the same table: exactly one wins, the other
// gets a conflict, never two open sessions.
func TestBookConcurrentOneWinner(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	svc := services.NewTableService(db, services.NewTableLocker())

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(table.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, apperr.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.EqualValues(t, 1, countOpenSessions(t, db, table.ID))
}

func TestCheckoutWithoutSessionConflicts(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	svc := services.NewTableService(db, services.NewTableLocker())

	_, _, err := svc.Checkout(table.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// No state change
	var reloaded models.Table
	assert.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableStatusEmpty, reloaded.Status)

	var sessions int64
	assert.NoError(t, db.Model(&models.TableSession{}).Count(&sessions).Error)
	assert.EqualValues(t, 0, sessions)
}

// Worked example: 2 hours at 50,000/h plus one order of 2 x 25,000 gives
// 100,000 + 50,000 = 150,000.
func TestCheckoutComputesBill(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)

	// Rewind the start so the session has been open for two hours
	twoHoursAgo := time.Now().UTC().Add(-2 * time.Hour)
	assert.NoError(t, db.Model(session).Update("start_time", twoHoursAgo).Error)

	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 2},
	}, 1.0)
	assert.NoError(t, err)

	closed, bill, err := tables.Checkout(table.ID)
	assert.NoError(t, err)

	assert.InDelta(t, 2.0, bill.ElapsedHours, 0.01)
	assert.InDelta(t, 100000, bill.OccupancyCharge, 500)
	assert.InDelta(t, 50000, bill.ConsumptionTotal, 0.001)
	assert.InDelta(t, 150000, bill.GrandTotal, 500)

	assert.NotNil(t, closed.EndTime)
	assert.NotNil(t, closed.TotalHours)
	assert.NotNil(t, closed.HourlyCharge)
	assert.InDelta(t, bill.OccupancyCharge, *closed.HourlyCharge, 0.001)

	var reloaded models.Table
	assert.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableStatusEmpty, reloaded.Status)
	assert.EqualValues(t, 0, countOpenSessions(t, db, table.ID))
}

func TestPreviewCheckoutDoesNotMutate(t *testing.T) {
	db := setupTestDB(t)
	table, dish := seedVenue(t, db)
	locks := services.NewTableLocker()
	tables := services.NewTableService(db, locks)
	orders := services.NewOrderService(db, catalog.NewGormReader(db), locks)

	session, err := tables.Book(table.ID)
	assert.NoError(t, err)
	_, err = orders.CreateOrder(session.ID, []services.OrderItemInput{
		{DishID: dish.ID, Quantity: 2},
	}, 1.0)
	assert.NoError(t, err)

	_, first, err := tables.PreviewCheckout(table.ID)
	assert.NoError(t, err)
	_, second, err := tables.PreviewCheckout(table.ID)
	assert.NoError(t, err)

	// Time only advances, so the running total never decreases
	assert.GreaterOrEqual(t, second.GrandTotal, first.GrandTotal)
	assert.Equal(t, first.ConsumptionTotal, second.ConsumptionTotal)

	// Still open after previews
	assert.EqualValues(t, 1, countOpenSessions(t, db, table.ID))
	var reloaded models.Table
	assert.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableStatusOccupied, reloaded.Status)

	_, final, err := tables.Checkout(table.ID)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, final.GrandTotal, second.GrandTotal)
	assert.Equal(t, second.ConsumptionTotal, final.ConsumptionTotal)
}

func TestPreviewCheckoutWithoutSessionConflicts(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	svc := services.NewTableService(db, services.NewTableLocker())

	_, _, err := svc.PreviewCheckout(table.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

// Booking one table must not be blocked by another table's occupancy.
func TestBookDifferentTablesIndependent(t *testing.T) {
	db := setupTestDB(t)
	table, _ := seedVenue(t, db)
	other := models.Table{FloorID: table.FloorID, Name: "Bàn 2", HourlyRate: 30000, Status: models.TableStatusEmpty}
	assert.NoError(t, db.Create(&other).Error)

	svc := services.NewTableService(db, services.NewTableLocker())

	_, err := svc.Book(table.ID)
	assert.NoError(t, err)
	_, err = svc.Book(other.ID)
	assert.NoError(t, err)

	assert.EqualValues(t, 1, countOpenSessions(t, db, table.ID))
	assert.EqualValues(t, 1, countOpenSessions(t, db, other.ID))
}
