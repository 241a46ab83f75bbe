package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/somosmas/ong-api/internal/domain"
)

const seedPassword = "Password1"

// seedData populates the roles and a set of development accounts. It runs in
// debug mode only and is a no-op when users already exist.
func seedData(db *gorm.DB, logger *slog.Logger) error {
	if err := seedRoles(db); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	// Same password for every seeded account, so hash once.
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()
	users := make([]domain.User, 0, 20)
	for i := 1; i <= 10; i++ {
		users = append(users, domain.User{
			FirstName: "Admin",
			LastName:  fmt.Sprintf("Account%d", i),
			Email:     fmt.Sprintf("admin%d@ong.com", i),
			Password:  string(hash),
			RoleID:    domain.RoleIDAdministrator,
		})
	}
	for i := 1; i <= 10; i++ {
		users = append(users, domain.User{
			FirstName: "Regular",
			LastName:  fmt.Sprintf("Account%d", i),
			Email:     fmt.Sprintf("user%d@ong.com", i),
			Password:  string(hash),
			RoleID:    domain.RoleIDUser,
		})
	}
	for i := range users {
		users[i].Touch(now)
	}

	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	logger.Info("seeded development accounts", slog.Int("users", len(users)))
	return nil
}

// seedRoles ensures the two fixed roles exist with their well-known ids.
func seedRoles(db *gorm.DB) error {
	roles := []domain.Role{
		{EntityBase: domain.EntityBase{ID: domain.RoleIDAdministrator}, Name: domain.RoleAdministrator, Description: "Full access to every resource"},
		{EntityBase: domain.EntityBase{ID: domain.RoleIDUser}, Name: domain.RoleUser, Description: "Regular authenticated user"},
	}

	now := time.Now()
	for i := range roles {
		roles[i].Touch(now)

		var existing domain.Role
		err := db.First(&existing, roles[i].ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup role %d: %w", roles[i].ID, err)
		}
		if err := db.Create(&roles[i]).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", roles[i].Name, err)
		}
	}
	return nil
}
