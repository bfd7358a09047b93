package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Init opens the sqlite database, runs migrations and seeds the fixed
// admin accounts. It must be called once before GetDB.
func Init(path string) error {
	opened, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	err = opened.AutoMigrate(
		&AdminUser{},
		&Photo{},
		&Video{},
		&Document{},
		&NewsPost{},
		&Donation{},
		&ContactMessage{},
	)
	if err != nil {
		return err
	}

	db = opened

	if err := seedAdmins(db); err != nil {
		return err
	}

	log.Println("Database initialized successfully")
	return nil
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatalf("database.Init must be called before GetDB")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying DB connection: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

type seedAdmin struct {
	username string
	password string
	role     string
	email    string
}

var defaultAdmins = []seedAdmin{
	{"admin", "sda2025", "Administrator", "admin@sefwihumjibresda.org"},
	{"pastor", "pastor123", "Pastor", "pastor@sefwihumjibresda.org"},
	{"elder", "elder456", "Elder", "elder@sefwihumjibresda.org"},
}

// seedAdmins inserts the fixed staff accounts, skipping any username
// that already exists so restarts never duplicate or reset them.
func seedAdmins(db *gorm.DB) error {
	for _, seed := range defaultAdmins {
		var count int64
		if err := db.Model(&AdminUser{}).Where("username = ?", seed.username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := AdminUser{
			Username:     seed.username,
			PasswordHash: hash,
			Role:         seed.role,
			Email:        seed.email,
		}
		if result := db.Create(&admin); result.Error != nil {
			return result.Error
		}
	}
	return nil
}
