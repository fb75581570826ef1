package database

import (
	"context"
	"errors"
	"testing"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/store"
)

type testWidget struct {
	ID   int64
	Name string
	Size int
}

type testWidgetModel struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
	Size int
}

func (testWidgetModel) TableName() string { return "test_widgets" }

type testWidgetMapper struct{}

func (testWidgetMapper) ToDomain(m testWidgetModel) testWidget {
	return testWidget{ID: m.ID, Name: m.Name, Size: m.Size}
}

func (testWidgetMapper) ToModel(d testWidget) testWidgetModel {
	return testWidgetModel{ID: d.ID, Name: d.Name, Size: d.Size}
}

func newWidgetRepository(t *testing.T) (Repository[testWidget, testWidgetModel], Database) {
	t.Helper()

	ctx := context.Background()
	db := openTestDatabase(t)

	if err := db.Session(ctx).AutoMigrate(&testWidgetModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewRepository[testWidget, testWidgetModel](db, testWidgetMapper{}, "widget"), db
}

func TestRepository_SaveAndFindOne(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	saved, err := repo.Save(ctx, testWidget{Name: "bolt", Size: 5})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected generated ID")
	}

	found, err := repo.FindOne(ctx, store.WithCondition("name", "bolt"))
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if found.Size != 5 {
		t.Errorf("expected size 5, got %d", found.Size)
	}
}

func TestRepository_FindOneNotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	_, err := repo.FindOne(ctx, store.WithCondition("name", "missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepository_SaveUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	saved, err := repo.Save(ctx, testWidget{Name: "bolt", Size: 5})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	saved.Size = 8
	if _, err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after update, got %d", count)
	}

	found, err := repo.FindOne(ctx, store.WithCondition("id", saved.ID))
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if found.Size != 8 {
		t.Errorf("expected size 8 after update, got %d", found.Size)
	}
}

func TestRepository_FindWithOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	for _, w := range []testWidget{
		{Name: "bolt", Size: 5},
		{Name: "nut", Size: 3},
		{Name: "washer", Size: 1},
	} {
		if _, err := repo.Save(ctx, w); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	widgets, err := repo.Find(ctx, store.WithOrderAsc("size"), store.WithLimit(2))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(widgets) != 2 {
		t.Fatalf("expected 2 widgets, got %d", len(widgets))
	}
	if widgets[0].Name != "washer" || widgets[1].Name != "nut" {
		t.Errorf("unexpected order: %v, %v", widgets[0].Name, widgets[1].Name)
	}
}

func TestRepository_FindWithBefore(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	for _, w := range []testWidget{
		{Name: "bolt", Size: 5},
		{Name: "nut", Size: 3},
	} {
		if _, err := repo.Save(ctx, w); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	widgets, err := repo.Find(ctx, store.WithBefore("size", 4))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(widgets) != 1 || widgets[0].Name != "nut" {
		t.Errorf("expected only nut, got %v", widgets)
	}
}

func TestRepository_ExistsAndCount(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	exists, err := repo.Exists(ctx, store.WithCondition("name", "bolt"))
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("expected no widgets yet")
	}

	if _, err := repo.Save(ctx, testWidget{Name: "bolt", Size: 5}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	exists, err = repo.Exists(ctx, store.WithCondition("name", "bolt"))
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Error("expected widget to exist")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
}

func TestRepository_DeleteBy(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepository(t)

	for _, w := range []testWidget{
		{Name: "bolt", Size: 5},
		{Name: "nut", Size: 3},
	} {
		if _, err := repo.Save(ctx, w); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	if err := repo.DeleteBy(ctx, store.WithCondition("name", "bolt")); err != nil {
		t.Fatalf("DeleteBy: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1 after delete, got %d", count)
	}
}

func TestRepository_InsideTransaction(t *testing.T) {
	ctx := context.Background()
	_, db := newWidgetRepository(t)

	err := WithTransaction(ctx, db, func(tx *Transaction) error {
		txRepo := NewRepository[testWidget, testWidgetModel](tx, testWidgetMapper{}, "widget")
		if _, err := txRepo.Save(ctx, testWidget{Name: "bolt", Size: 5}); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	if err == nil {
		t.Fatal("expected error from transaction body")
	}

	repo := NewRepository[testWidget, testWidgetModel](db, testWidgetMapper{}, "widget")
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to discard the widget, got count %d", count)
	}
}
