package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"LostAndFound/internal/model"
)

// InitDB opens the database and runs migrations for all server models.
// A postgres:// DSN selects the Postgres driver; anything else is treated
// as a SQLite path (modernc driver, no cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "lostandfound.sqlite"
	}

	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		return nil, err
	}
	return db, nil
}
