package main

import (
	"flag"
	"os"

	"healfinity-backend/config"
	"healfinity-backend/internal/infrastructure/database"
	"healfinity-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	withDemoUsers := flag.Bool("demo-users", false, "also create demo accounts")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	var db *gorm.DB
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = database.NewPostgresConnection(cfg.DB)
	default:
		db, err = database.NewSQLiteConnection(cfg.DB.SQLitePath)
	}
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, logrus.StandardLogger(), *withDemoUsers); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}

	logrus.Info("Seeding complete")
}
