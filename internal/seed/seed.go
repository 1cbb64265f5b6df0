package seed

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run loads the provider catalog and, optionally, demo accounts. Seeding is
// idempotent: a non-empty table is left untouched.
func Run(db *gorm.DB, log *logrus.Logger, withDemoUsers bool) error {
	if err := seedDoctors(db, log); err != nil {
		return err
	}
	if err := seedInstructors(db, log); err != nil {
		return err
	}
	if withDemoUsers {
		if err := seedDemoUsers(db, log); err != nil {
			return err
		}
	}
	return nil
}

func seedDoctors(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Doctors already seeded, skipping")
		return nil
	}

	doctors := []entity.Doctor{
		{
			Name:         "Dr. Sarah Johnson",
			Specialty:    "General Medicine",
			Rating:       decimal.RequireFromString("4.9"),
			Reviews:      156,
			Experience:   "12 years",
			Languages:    entity.StringList{"English", "Spanish"},
			Availability: "Available Today",
			Price:        "Free",
			Bio:          "Specializes in holistic health approach combining traditional and modern medicine.",
			ImageURL:     "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			Name:         "Dr. Michael Chen",
			Specialty:    "Integrative Medicine",
			Rating:       decimal.RequireFromString("4.8"),
			Reviews:      203,
			Experience:   "15 years",
			Languages:    entity.StringList{"English", "Mandarin"},
			Availability: "Available Tomorrow",
			Price:        "Free",
			Bio:          "Expert in combining Eastern and Western medical practices for optimal health outcomes.",
			ImageURL:     "https://images.pexels.com/photos/6749778/pexels-photo-6749778.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Nutrition & Wellness",
			Rating:       decimal.RequireFromString("4.7"),
			Reviews:      98,
			Experience:   "8 years",
			Languages:    entity.StringList{"English", "Spanish", "Portuguese"},
			Availability: "Available This Week",
			Price:        "Free",
			Bio:          "Focuses on preventive care through nutrition and lifestyle modifications.",
			ImageURL:     "https://images.pexels.com/photos/5452293/pexels-photo-5452293.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
	}

	if err := db.Create(&doctors).Error; err != nil {
		return err
	}

	log.Infof("Seeded %d doctors", len(doctors))
	return nil
}

func seedInstructors(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.Instructor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Instructors already seeded, skipping")
		return nil
	}

	instructors := []entity.Instructor{
		{
			Name:       "Maya Patel",
			Specialty:  "Hatha Yoga",
			Rating:     decimal.RequireFromString("4.9"),
			Experience: "8 years",
			Price:      "Free",
			Bio:        "Certified yoga instructor specializing in traditional Hatha yoga and meditation.",
			ImageURL:   "https://images.pexels.com/photos/3822622/pexels-photo-3822622.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			Name:       "Alex Johnson",
			Specialty:  "Vinyasa Flow",
			Rating:     decimal.RequireFromString("4.8"),
			Experience: "6 years",
			Price:      "Free",
			Bio:        "Dynamic Vinyasa flow instructor focused on strength and flexibility.",
			ImageURL:   "https://images.pexels.com/photos/3822864/pexels-photo-3822864.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			Name:       "Priya Sharma",
			Specialty:  "Restorative Yoga",
			Rating:     decimal.RequireFromString("4.7"),
			Experience: "10 years",
			Price:      "Free",
			Bio:        "Expert in restorative yoga and stress relief techniques.",
			ImageURL:   "https://images.pexels.com/photos/3822864/pexels-photo-3822864.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
	}

	if err := db.Create(&instructors).Error; err != nil {
		return err
	}

	log.Infof("Seeded %d instructors", len(instructors))
	return nil
}

func seedDemoUsers(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Users already seeded, skipping")
		return nil
	}

	demos := []struct {
		name  string
		email string
		phone string
		age   int
	}{
		{"John Doe", "john@example.com", "+1 (555) 123-4567", 32},
		{"Sarah Wilson", "sarah@example.com", "+1 (555) 987-6543", 28},
	}

	for _, d := range demos {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := entity.User{
			Name:        d.name,
			Email:       d.email,
			Password:    string(hashed),
			Phone:       d.phone,
			Age:         d.age,
			Avatar:      entity.DeriveAvatar(d.name),
			Preferences: entity.DefaultPreferences(),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		if err := db.Create(entity.ZeroSnapshot(user.ID, entity.Today())).Error; err != nil {
			return err
		}
	}

	log.Infof("Seeded %d demo users", len(demos))
	return nil
}
