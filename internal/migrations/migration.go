package migrations

import (
	"errors"
	"log"

	"coffeeshop/internal/models"
	"coffeeshop/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations recreates the schema from scratch and seeds default data.
// Destructive; used by the init-db tool, not the server.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Coffee{},
		&models.Admin{},
		&models.Store{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Admin{},
		&models.Coffee{},
		&models.Store{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds a default admin, two stores, and a starter catalog.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	adminRepo := repository.NewAdminRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	coffeeRepo := repository.NewCoffeeRepository(db)

	// Default admin
	existing, err := adminRepo.GetByUsername("admin")
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		log.Println("Default admin already exists")
		return nil
	}

	admin := &models.Admin{
		Username: "admin",
		Password: "admin123",
	}
	if err := adminRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create default admin: %v", err)
	} else {
		log.Println("Default admin created (username: admin)")
	}

	// Default stores
	stores := []models.Store{
		{Name: "Downtown", Address: "12 Main St", PrepTimeMinutes: 10, Status: models.StoreOpen},
		{Name: "Riverside", Address: "3 Quay Rd", PrepTimeMinutes: 15, Status: models.StoreOpen},
	}
	for i := range stores {
		if err := storeRepo.Create(&stores[i]); err != nil {
			log.Printf("Warning: Failed to create store %s: %v", stores[i].Name, err)
		}
	}

	// Starter catalog
	coffees := []models.Coffee{
		{ID: "latte", AdminID: &admin.ID, Name: "Latte", Description: "Espresso with steamed milk", Price: 4.00, Status: models.CoffeeActive},
		{ID: "espresso", AdminID: &admin.ID, Name: "Espresso", Description: "Double shot", Price: 2.50, Status: models.CoffeeActive},
		{ID: "cappuccino", AdminID: &admin.ID, Name: "Cappuccino", Description: "Espresso with foamed milk", Price: 3.75, Status: models.CoffeeActive},
	}
	for i := range coffees {
		if err := coffeeRepo.Create(&coffees[i]); err != nil {
			log.Printf("Warning: Failed to create coffee %s: %v", coffees[i].Name, err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
