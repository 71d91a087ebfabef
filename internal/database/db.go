package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

// Connect opens Postgres and migrates the bookmark table. Fatal on failure:
// the API is useless without its store.
func Connect(dsn string, log *zap.SugaredLogger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	log.Info("database connection established")

	if err := db.AutoMigrate(&models.Bookmark{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	return db
}
