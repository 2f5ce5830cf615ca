package configs

import (
	"nunis-api/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey so services can react to them.
	gormCfg := &gorm.Config{TranslateError: true}
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Menu{},
		&entity.Transaction{}, &entity.TransactionDetail{},
		&entity.Contact{},
		&entity.PasswordReset{},
	)
}
