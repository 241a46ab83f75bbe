package slide

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/repository"
)

type fakeImageStore struct{}

func (fakeImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	return "https://img.test/" + key, nil
}

func (fakeImageStore) Delete(ctx context.Context, keyOrURL string) error { return nil }

func (fakeImageStore) Get(ctx context.Context, key string) (io.ReadCloser, error) { return nil, nil }

func newTestService(t *testing.T) (*SlideService, *gorm.DB) {
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

	if err := db.AutoMigrate(&domain.Slide{}, &domain.Organization{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewSlideService(repository.NewStore(db), fakeImageStore{}), db
}

func seedOrg(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	org := &domain.Organization{Name: name}
	org.Touch(time.Now())
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("seed organization %q: %v", name, err)
	}
	return org.ID
}

const pixel = "aGVsbG8=" // any valid base64 payload

func TestSlideInsertOrderAssignment(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	orgID := seedOrg(t, db, "Somos Mas")

	first, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, Text: "a", OrganizationID: orgID})
	if err != nil {
		t.Fatal(err)
	}
	if first.Order != 1 {
		t.Errorf("first order = %d, want 1", first.Order)
	}

	second, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, Text: "b", OrganizationID: orgID})
	if err != nil {
		t.Fatal(err)
	}
	if second.Order != 2 {
		t.Errorf("second order = %d, want 2", second.Order)
	}

	// A deleted slide's position is not handed out again.
	if _, err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatal(err)
	}
	third, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, Text: "c", OrganizationID: orgID})
	if err != nil {
		t.Fatal(err)
	}
	if third.Order != 3 {
		t.Errorf("order after delete = %d, want 3", third.Order)
	}
}

func TestSlideInsertExplicitOrder(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	orgID := seedOrg(t, db, "Somos Mas")

	if _, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, Order: 5, OrganizationID: orgID}); err != nil {
		t.Fatal(err)
	}

	t.Run("collision is rejected", func(t *testing.T) {
		_, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, Order: 5, OrganizationID: orgID})
		if !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})

	t.Run("append starts after the highest", func(t *testing.T) {
		got, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, OrganizationID: orgID})
		if err != nil {
			t.Fatal(err)
		}
		if got.Order != 6 {
			t.Errorf("order = %d, want 6", got.Order)
		}
	})
}

func TestSlideInsertUnknownOrganization(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Insert(context.Background(), CreateSlideRequest{Image: pixel, OrganizationID: 999})
	if !domain.IsInvalidState(err) {
		t.Errorf("err = %v, want invalid state", err)
	}
}

func TestSlideListByOrganization(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	orgID := seedOrg(t, db, "Somos Mas")

	for _, order := range []int{3, 1, 2} {
		if _, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, Order: order, OrganizationID: orgID}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := svc.ListByOrganization(ctx, orgID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d slides, want 3", len(items))
	}
	for i, item := range items {
		if item.Order != i+1 {
			t.Errorf("position %d has order %d, want ascending", i, item.Order)
		}
	}
}

func TestSlideUpdateMoveBetweenOrganizations(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	orgA := seedOrg(t, db, "Somos Mas")
	orgB := seedOrg(t, db, "Sede Norte")

	if _, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, OrganizationID: orgA}); err != nil {
		t.Fatal(err)
	}
	moved, err := svc.Insert(ctx, CreateSlideRequest{Image: pixel, OrganizationID: orgB})
	if err != nil {
		t.Fatal(err)
	}

	// Both slides hold position 1 in their own organizations. Moving the
	// second one into the first organization while keeping its position must
	// collide even though the order field itself does not change.
	t.Run("occupied position in the destination", func(t *testing.T) {
		_, err := svc.Update(ctx, moved.ID, UpdateSlideRequest{OrganizationID: orgA})
		if !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})

	t.Run("free position in the destination", func(t *testing.T) {
		got, err := svc.Update(ctx, moved.ID, UpdateSlideRequest{Order: 2, OrganizationID: orgA})
		if err != nil {
			t.Fatal(err)
		}
		if got.OrganizationID != orgA || got.Order != 2 {
			t.Errorf("slide = %+v, want order 2 in the destination", got)
		}
	})
}
