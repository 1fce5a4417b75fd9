package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cafe-pos/apperr"
	"cafe-pos/models"
	"cafe-pos/utils"
)

// TableService owns the occupancy state machine: EMPTY <-> OCCUPIED with
// at most one open session per table. Book and Checkout for the same table
// run under that table's lock and inside one transaction, so the
// check ("no open session") and the effect (create/close session, flip
// status) are applied as a single unit. A conflict here is a legitimate
// business outcome (the table really is taken), not a fault to retry.
type TableService struct {
	db    *gorm.DB
	locks *TableLocker
}

func NewTableService(db *gorm.DB, locks *TableLocker) *TableService {
	return &TableService{db: db, locks: locks}
}

// Book opens a session on an empty table and marks it OCCUPIED.
func (s *TableService) Book(tableID uint) (*models.TableSession, error) {
	defer s.locks.Lock(tableID).Unlock()

	var session models.TableSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: table %d", apperr.ErrNotFound, tableID)
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.TableSession{}).
			Where("table_id = ? AND end_time IS NULL", tableID).
			Count(&open).Error; err != nil {
			return err
		}
		// The open-session row is authoritative over the cached status
		// column; either fact blocks the booking.
		if open > 0 || table.Status == models.TableStatusOccupied {
			return fmt.Errorf("%w: table %s is already occupied", apperr.ErrConflict, table.Name)
		}

		session = models.TableSession{
			TableID:   table.ID,
			StartTime: time.Now().UTC(),
		}
		if err := tx.Create(&session).Error; err != nil {
			// The unique index on open sessions turns a lost race into a
			// duplicate-key error; that is a conflict, not a store failure.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: table %s is already occupied", apperr.ErrConflict, table.Name)
			}
			return err
		}

		return tx.Model(&table).Update("status", models.TableStatusOccupied).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %d booked, session %d opened", tableID, session.ID)
	return &session, nil
}

// Checkout closes the open session: computes the bill, writes end time,
// elapsed hours and occupancy charge onto the session and sets the table
// back to EMPTY.
func (s *TableService) Checkout(tableID uint) (*models.TableSession, Bill, error) {
	defer s.locks.Lock(tableID).Unlock()

	var (
		session models.TableSession
		bill    Bill
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		table, sess, orders, err := openSessionWithOrders(tx, tableID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		bill = ComputeBill(sess, orders, table.HourlyRate, now)

		if err := tx.Model(sess).Updates(map[string]interface{}{
			"end_time":      now,
			"total_hours":   bill.ElapsedHours,
			"hourly_charge": bill.OccupancyCharge,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(table).Update("status", models.TableStatusEmpty).Error; err != nil {
			return err
		}

		sess.EndTime = &now
		sess.TotalHours = &bill.ElapsedHours
		sess.HourlyCharge = &bill.OccupancyCharge
		sess.Orders = orders
		session = *sess
		return nil
	})
	if err != nil {
		return nil, Bill{}, err
	}

	utils.InfoLogger.Printf("Table %d checked out, session %d closed, grand total %s",
		tableID, session.ID, utils.FormatCurrency(bill.GrandTotal))
	return &session, bill, nil
}

// PreviewCheckout computes the bill for the open session without closing
// it or touching any state. The computation is the one Checkout uses, so
// preview and final bill can only differ by the time elapsed in between.
func (s *TableService) PreviewCheckout(tableID uint) (*models.TableSession, Bill, error) {
	var (
		session models.TableSession
		bill    Bill
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		table, sess, orders, err := openSessionWithOrders(tx, tableID)
		if err != nil {
			return err
		}
		bill = ComputeBill(sess, orders, table.HourlyRate, time.Now().UTC())
		sess.Orders = orders
		session = *sess
		return nil
	})
	if err != nil {
		return nil, Bill{}, err
	}
	return &session, bill, nil
}

// openSessionWithOrders loads the table, its open session and the orders
// attached to that session. Missing table -> not found; no open session ->
// conflict ("no active session").
func openSessionWithOrders(tx *gorm.DB, tableID uint) (*models.Table, *models.TableSession, []models.Order, error) {
	var table models.Table
	if err := tx.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: table %d", apperr.ErrNotFound, tableID)
		}
		return nil, nil, nil, err
	}

	var session models.TableSession
	if err := tx.Where("table_id = ? AND end_time IS NULL", tableID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: no active session for table %s", apperr.ErrConflict, table.Name)
		}
		return nil, nil, nil, err
	}

	var orders []models.Order
	if err := tx.Where("table_session_id = ?", session.ID).
		Preload("Items").Find(&orders).Error; err != nil {
		return nil, nil, nil, err
	}

	return &table, &session, orders, nil
}
