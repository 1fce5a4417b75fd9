package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cafe-pos/models"
	"cafe-pos/utils"
)

// Seed bootstraps an empty database with an admin account and a minimal
// floor/catalog so the API is usable right after first start.
func Seed(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{Username: "admin", Password: string(hashed), Role: models.RoleAdmin}
	if err := db.Where(models.User{Username: "admin"}).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	floor := models.Floor{Name: "Tầng 1", Order: 1}
	if err := db.Where(models.Floor{Name: "Tầng 1"}).FirstOrCreate(&floor).Error; err != nil {
		return err
	}

	table := models.Table{FloorID: floor.ID, Name: "Bàn 1", HourlyRate: 50000, Status: models.TableStatusEmpty}
	if err := db.Where(models.Table{FloorID: floor.ID, Name: "Bàn 1"}).FirstOrCreate(&table).Error; err != nil {
		return err
	}

	category := models.Category{Name: "Đồ uống", Order: 1}
	if err := db.Where(models.Category{Name: "Đồ uống"}).FirstOrCreate(&category).Error; err != nil {
		return err
	}

	dish := models.Dish{CategoryID: category.ID, Name: "Cà phê đen", Price: 25000}
	if err := db.Where(models.Dish{CategoryID: category.ID, Name: "Cà phê đen"}).FirstOrCreate(&dish).Error; err != nil {
		return err
	}

	utils.InfoLogger.Println("Seeding completed (default login: admin / admin123)")
	return nil
}
