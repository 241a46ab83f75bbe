package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/repository"
)

type fakeTokens struct{}

func (fakeTokens) Generate(userID uint, role string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

func (fakeTokens) Parse(token string) (domain.Subject, error) { return domain.Subject{}, nil }

type fakeImageStore struct{}

func (fakeImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	return "https://img.test/" + key, nil
}

func (fakeImageStore) Delete(ctx context.Context, keyOrURL string) error { return nil }

func (fakeImageStore) Get(ctx context.Context, key string) (io.ReadCloser, error) { return nil, nil }

type fakeMailer struct {
	sentTo []string
	err    error
}

func (f *fakeMailer) SendTemplated(ctx context.Context, to, title, bodyHTML, contactHTML string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, to)
	return nil
}

func newTestService(t *testing.T, mailer *fakeMailer) (*AuthService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&domain.User{}, &domain.Role{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	role := &domain.Role{Name: domain.RoleUser, Description: "Regular authenticated user"}
	role.ID = domain.RoleIDUser
	role.Touch(time.Now())
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}

	welcome := WelcomeMail{Title: "Welcome", Body: "Glad to have you.", Contact: "contact@ong.com"}
	return NewAuthService(repository.NewStore(db), fakeTokens{}, fakeImageStore{}, mailer, time.Hour, welcome), db
}

func seedAccount(t *testing.T, db *gorm.DB, email string, roleID uint) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	account := &domain.User{
		FirstName: "Seeded",
		LastName:  "Account",
		Email:     email,
		Password:  string(hash),
		RoleID:    roleID,
	}
	account.Touch(time.Now())
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("seed account %s: %v", email, err)
	}
	return account
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc, _ := newTestService(t, mailer)

	reg := RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@ONG.com",
		Password:  "supersecret",
	}
	created, warnings, err := svc.Register(ctx, reg)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if created.Token == "" {
		t.Error("registration returned no token")
	}
	if created.User.Email != "ada@ong.com" {
		t.Errorf("email = %q, want lowercased", created.User.Email)
	}
	if created.User.RoleID != domain.RoleIDUser {
		t.Errorf("role = %d, want the default user role", created.User.RoleID)
	}
	if len(mailer.sentTo) != 1 || mailer.sentTo[0] != "ada@ong.com" {
		t.Errorf("welcome mail went to %v", mailer.sentTo)
	}

	t.Run("login with the same credentials", func(t *testing.T) {
		got, err := svc.Login(ctx, LoginRequest{Email: "ada@ong.com", Password: "supersecret"})
		if err != nil {
			t.Fatal(err)
		}
		if got.User.ID != created.User.ID {
			t.Errorf("logged in as user %d, want %d", got.User.ID, created.User.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "ada@ong.com", Password: "wrong"})
		if !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})

	t.Run("unknown email fails identically", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "nobody@ong.com", Password: "supersecret"})
		if !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, reg)
		if !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})
}

func TestRegisterMailFailureIsAWarning(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeMailer{err: errors.New("smtp down")})

	created, warnings, err := svc.Register(ctx, RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@ong.com",
		Password:  "supersecret",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.Token == "" {
		t.Error("registration should still succeed")
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeMailer{})

	created, _, err := svc.Register(ctx, RegisterRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@ong.com",
		Password:  "supersecret",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Me(ctx, domain.Subject{UserID: created.User.ID, Role: domain.RoleUser})
	if err != nil {
		t.Fatal(err)
	}
	if got.Email != "alan@ong.com" {
		t.Errorf("Me() = %+v", got)
	}

	t.Run("unknown subject", func(t *testing.T) {
		if _, err := svc.Me(ctx, domain.Subject{UserID: 999}); !domain.IsNotFound(err) {
			t.Errorf("err = %v, want not found", err)
		}
	})
}

func TestSeededAdministratorLogin(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t, &fakeMailer{})

	adminRole := &domain.Role{Name: domain.RoleAdministrator, Description: "Full access to every resource"}
	adminRole.ID = domain.RoleIDAdministrator
	adminRole.Touch(time.Now())
	if err := db.Create(adminRole).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	admin := seedAccount(t, db, "admin1@ong.com", domain.RoleIDAdministrator)

	got, err := svc.Login(ctx, LoginRequest{Email: "admin1@ong.com", Password: "Password1"})
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("token-%d-%s", admin.ID, domain.RoleAdministrator)
	if got.Token != want {
		t.Errorf("token = %q, want the Administrator role claim", got.Token)
	}
	if got.User.RoleID != domain.RoleIDAdministrator {
		t.Errorf("role id = %d, want %d", got.User.RoleID, domain.RoleIDAdministrator)
	}

	t.Run("missing role row falls back to User", func(t *testing.T) {
		orphan := seedAccount(t, db, "orphan@ong.com", 99)

		got, err := svc.Login(ctx, LoginRequest{Email: "orphan@ong.com", Password: "Password1"})
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("token-%d-%s", orphan.ID, domain.RoleUser)
		if got.Token != want {
			t.Errorf("token = %q, want the fallback User role claim", got.Token)
		}
	})
}
