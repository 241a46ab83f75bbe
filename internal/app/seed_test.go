package app

import (
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/somosmas/ong-api/internal/domain"
)

func TestSeedData(t *testing.T) {
	db := openTestDB(t)
	if err := db.AutoMigrate(&domain.User{}, &domain.Role{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := seedData(db, discard); err != nil {
		t.Fatal(err)
	}

	var roles int64
	if err := db.Model(&domain.Role{}).Count(&roles).Error; err != nil {
		t.Fatal(err)
	}
	if roles != 2 {
		t.Errorf("roles = %d, want 2", roles)
	}

	var admins, regulars int64
	db.Model(&domain.User{}).Where("role_id = ?", domain.RoleIDAdministrator).Count(&admins)
	db.Model(&domain.User{}).Where("role_id = ?", domain.RoleIDUser).Count(&regulars)
	if admins != 10 || regulars != 10 {
		t.Errorf("seeded %d admins and %d regulars, want 10/10", admins, regulars)
	}

	var account domain.User
	if err := db.Where("email = ?", "admin1@ong.com").First(&account).Error; err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(seedPassword)); err != nil {
		t.Error("seeded password hash does not verify")
	}

	// Running again must not duplicate anything.
	if err := seedData(db, discard); err != nil {
		t.Fatal(err)
	}
	var total int64
	db.Model(&domain.User{}).Count(&total)
	if total != 20 {
		t.Errorf("users after reseed = %d, want 20", total)
	}
}
