package configs

import (
	"log"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"golang.org/x/crypto/bcrypt"
)

// Create the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed reference data the jobs and order flow depend on.
func SeedLookups() error {
	db := DB()

	// Fish types sold through the platform
	fishTypes := []entity.FishType{
		{Name: "Yellowfin Tuna", Category: "pelagic", IsActive: true},
		{Name: "Skipjack Tuna", Category: "pelagic", IsActive: true},
		{Name: "Sail Fish", Category: "pelagic", IsActive: true},
		{Name: "Trevally", Category: "pelagic", IsActive: true},
		{Name: "Red Mullet", Category: "demersal", IsActive: true},
		{Name: "Prawns", Category: "shellfish", IsActive: true},
		{Name: "Cuttlefish", Category: "shellfish", IsActive: true},
	}
	for _, ft := range fishTypes {
		if err := db.FirstOrCreate(&entity.FishType{}, entity.FishType{Name: ft.Name}).Error; err != nil {
			return err
		}
		db.Model(&entity.FishType{}).Where("name = ?", ft.Name).
			Updates(map[string]any{"category": ft.Category, "is_active": ft.IsActive})
	}

	// Delivery fleet
	db.FirstOrCreate(&entity.Truck{}, entity.Truck{PlateNumber: "WP-CAB-1234"})
	db.FirstOrCreate(&entity.Truck{}, entity.Truck{PlateNumber: "WP-CAF-5678"})
	db.FirstOrCreate(&entity.Truck{}, entity.Truck{PlateNumber: "SP-LN-9012"})

	return nil
}
