package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"gorm.io/gorm"
)

const seededLogs = 14

// Run seeds the database with sample users and sleep logs. Safe to call
// multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepLog{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{
			ID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:  "Maya",
			Email: "maya@example.com",
			// sha256("password123")
			PasswordHash: "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f",
			Age:          29,
		},
		{
			ID:           uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:         "Bright",
			Email:        "bright@example.com",
			PasswordHash: "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f",
			Age:          34,
		},
		{
			ID:           uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:         "Karthikeya",
			Email:        "karthikeya@example.com",
			PasswordHash: "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f",
			Age:          26,
		},
	}

	for _, user := range users {
		if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSleepLogsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSleepLogsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	var count int64
	if err := db.Model(&domain.SleepLog{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := 0; i < seededLogs; i++ {
		sleep := domain.Clock{Hour: 21 + rng.Intn(4), Minute: rng.Intn(60)}
		wake := sleep.AddHours(float64(6 + rng.Intn(4)))
		stress := 1 + rng.Intn(10)
		activity := 15 + rng.Intn(90)

		entry := domain.SleepLog{
			UserID:          user.ID,
			SleepTime:       sleep.String(),
			WakeTime:        wake.String(),
			EnergyLevel:     1 + rng.Intn(10),
			StressLevel:     &stress,
			ActivityMinutes: &activity,
		}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create sleep log: %w", err)
		}
	}
	return nil
}
