package configs

import (
	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.UserSetting{},
		&entity.FishType{}, &entity.FishPrice{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusHistory{},
		&entity.Truck{},
		&entity.Blog{},
		&entity.WeatherForecast{}, &entity.DailyPricePrediction{},
	)
}
