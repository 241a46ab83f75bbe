package news

import (
	"context"
	"fmt"
	"io"
	"testing"

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

func newTestService(t *testing.T) *NewsService {
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

	if err := db.AutoMigrate(&domain.News{}, &domain.Category{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewNewsService(repository.NewStore(db), fakeImageStore{})
}

func TestNewsInsertAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Insert(ctx, CreateNewsRequest{Name: "  Annual Report  ", Content: "We did a lot."})
	if err != nil {
		t.Fatal(err)
	}
	if created.Name != "Annual Report" {
		t.Errorf("name = %q, want trimmed", created.Name)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != created {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestNewsInsertUniqueness(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Insert(ctx, CreateNewsRequest{Name: "Gala", Content: "Dinner"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		req  CreateNewsRequest
	}{
		{"same name", CreateNewsRequest{Name: "Gala", Content: "Other"}},
		{"same content", CreateNewsRequest{Name: "Other", Content: "Dinner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Insert(ctx, tt.req); !domain.IsInvalidState(err) {
				t.Errorf("err = %v, want invalid state", err)
			}
		})
	}
}

func TestNewsUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Insert(ctx, CreateNewsRequest{Name: "First", Content: "one"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Insert(ctx, CreateNewsRequest{Name: "Second", Content: "two"})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("own values do not collide", func(t *testing.T) {
		got, err := svc.Update(ctx, first.ID, UpdateNewsRequest{Name: "First", Content: "one revised"})
		if err != nil {
			t.Fatal(err)
		}
		if got.Content != "one revised" {
			t.Errorf("content = %q", got.Content)
		}
	})

	t.Run("another article's name collides", func(t *testing.T) {
		if _, err := svc.Update(ctx, first.ID, UpdateNewsRequest{Name: "Second", Content: "fresh"}); !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})

	t.Run("absent id", func(t *testing.T) {
		if _, err := svc.Update(ctx, 9999, UpdateNewsRequest{Name: "X", Content: "y"}); !domain.IsNotFound(err) {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("deleted article", func(t *testing.T) {
		if _, err := svc.Delete(ctx, second.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Update(ctx, second.ID, UpdateNewsRequest{Name: "Second", Content: "two"}); !domain.IsInvalidState(err) {
			t.Errorf("err = %v, want invalid state", err)
		}
	})
}

func TestNewsDeleteHidesFromList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Insert(ctx, CreateNewsRequest{Name: "Gone soon", Content: "bye"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.List(ctx, domain.PageParams{PageNumber: 1, PageSize: 10}, "http://x/news"); !domain.IsNotFound(err) {
		t.Errorf("List() err = %v, want not found once everything is deleted", err)
	}
}
