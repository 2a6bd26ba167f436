package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ContentDB holds the secondary MySQL connection used for marketing site
// content. When MYSQL_DSN is not set it falls back to the primary database
// so a single-database deployment keeps working.
var ContentDB *gorm.DB

func ConnectContentDB() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		log.Println("MYSQL_DSN not set, content stored on primary database")
		ContentDB = DB
		return
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect MySQL content database: %v, falling back to primary", err)
		ContentDB = DB
		return
	}

	ContentDB = db
}
