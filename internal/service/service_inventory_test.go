package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/store"
	"github.com/davolkov/inventar/models"
)

var errStorageDown = errors.New("storage down")

func newTestService(items *mockItemRepository, photos *mockPhotoStore) InventoryService {
	return NewInventoryService(items, photos, logger.Nop())
}

func passthroughCreate() func(ctx context.Context, item models.Item) (models.Item, error) {
	return func(_ context.Context, item models.Item) (models.Item, error) {
		return item, nil
	}
}

func TestInventory_Create_EmptyName(t *testing.T) {
	items := &mockItemRepository{
		CreateFunc: func(_ context.Context, _ models.Item) (models.Item, error) {
			t.Fatal("record must not be persisted for an empty name")
			return models.Item{}, nil
		},
	}
	photos := &mockPhotoStore{
		SaveFunc: func(_ context.Context, _ io.Reader, _ string) (string, error) {
			t.Fatal("photo must not be saved for an empty name")
			return "", nil
		},
	}

	svc := newTestService(items, photos)

	_, err := svc.Create(context.Background(), "   ", "desc", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	assert.ErrorIs(t, err, ErrEmptyItemName)
}

func TestInventory_Create_WithoutPhoto(t *testing.T) {
	items := &mockItemRepository{CreateFunc: passthroughCreate()}
	photos := &mockPhotoStore{
		SaveFunc: func(_ context.Context, _ io.Reader, _ string) (string, error) {
			t.Fatal("no photo was supplied")
			return "", nil
		},
	}

	svc := newTestService(items, photos)

	created, err := svc.Create(context.Background(), "Drill", "cordless", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Drill", created.Name)
	assert.False(t, created.HasPhoto())
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, time.Minute)
}

func TestInventory_Create_SavesPhotoBeforeRecord(t *testing.T) {
	var calls []string

	items := &mockItemRepository{
		CreateFunc: func(_ context.Context, item models.Item) (models.Item, error) {
			calls = append(calls, "create")
			assert.Equal(t, "photo-key.jpg", item.PhotoKey, "record must carry the saved key")
			return item, nil
		},
	}
	photos := &mockPhotoStore{
		SaveFunc: func(_ context.Context, _ io.Reader, ext string) (string, error) {
			calls = append(calls, "save")
			assert.Equal(t, ".jpg", ext)
			return "photo-key.jpg", nil
		},
	}

	svc := newTestService(items, photos)

	created, err := svc.Create(context.Background(), "Drill", "", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	require.NoError(t, err)
	assert.True(t, created.HasPhoto())
	assert.Equal(t, []string{"save", "create"}, calls)
}

func TestInventory_Create_PhotoSaveFails(t *testing.T) {
	items := &mockItemRepository{
		CreateFunc: func(_ context.Context, _ models.Item) (models.Item, error) {
			t.Fatal("record must not be persisted when the photo save failed")
			return models.Item{}, nil
		},
	}
	photos := &mockPhotoStore{
		SaveFunc: func(_ context.Context, _ io.Reader, _ string) (string, error) {
			return "", store.ErrSavingPhoto
		},
	}

	svc := newTestService(items, photos)

	_, err := svc.Create(context.Background(), "Drill", "", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	assert.ErrorIs(t, err, store.ErrSavingPhoto)
}

func TestInventory_Create_CleansUpPhotoOnPersistFailure(t *testing.T) {
	deleted := ""

	items := &mockItemRepository{
		CreateFunc: func(_ context.Context, _ models.Item) (models.Item, error) {
			return models.Item{}, errStorageDown
		},
	}
	photos := &mockPhotoStore{
		SaveFunc: func(_ context.Context, _ io.Reader, _ string) (string, error) {
			return "photo-key.jpg", nil
		},
		DeleteFunc: func(_ context.Context, key string) error {
			deleted = key
			return nil
		},
	}

	svc := newTestService(items, photos)

	_, err := svc.Create(context.Background(), "Drill", "", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	assert.ErrorIs(t, err, errStorageDown)
	assert.Equal(t, "photo-key.jpg", deleted, "saved photo must be released when the record write fails")
}

func TestInventory_Create_DistinctIdentifiers(t *testing.T) {
	items := &mockItemRepository{CreateFunc: passthroughCreate()}
	svc := newTestService(items, &mockPhotoStore{})

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		created, err := svc.Create(context.Background(), "Drill", "", nil)
		require.NoError(t, err)

		_, err = uuid.Parse(created.ID)
		require.NoError(t, err, "identifier %q is not a UUID", created.ID)

		_, dup := seen[created.ID]
		require.False(t, dup, "identifier %q minted twice", created.ID)
		seen[created.ID] = struct{}{}
	}
}

func TestInventory_ReplacePhoto_NoPhotoProvided(t *testing.T) {
	svc := newTestService(&mockItemRepository{}, &mockPhotoStore{})

	_, err := svc.ReplacePhoto(context.Background(), "id-1", nil)
	assert.ErrorIs(t, err, ErrNoPhotoProvided)
}

func TestInventory_ReplacePhoto_UnknownItemSavesNothing(t *testing.T) {
	items := &mockItemRepository{
		GetFunc: func(_ context.Context, _ string) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}
	photos := &mockPhotoStore{
		ReplaceFunc: func(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
			t.Fatal("no file may land for an unknown item")
			return "", nil
		},
	}

	svc := newTestService(items, photos)

	_, err := svc.ReplacePhoto(context.Background(), "missing", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestInventory_ReplacePhoto_SwapsKeys(t *testing.T) {
	items := &mockItemRepository{
		GetFunc: func(_ context.Context, id string) (models.Item, error) {
			return models.Item{ID: id, Name: "Drill", PhotoKey: "old.jpg"}, nil
		},
		SetPhotoKeyFunc: func(_ context.Context, id string, photoKey string) (models.Item, error) {
			return models.Item{ID: id, Name: "Drill", PhotoKey: photoKey}, nil
		},
	}
	photos := &mockPhotoStore{
		ReplaceFunc: func(_ context.Context, oldKey string, _ io.Reader, _ string) (string, error) {
			assert.Equal(t, "old.jpg", oldKey)
			return "new.jpg", nil
		},
	}

	svc := newTestService(items, photos)

	updated, err := svc.ReplacePhoto(context.Background(), "id-1", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", updated.PhotoKey)
}

func TestInventory_ReplacePhoto_CleansUpOnRecordFailure(t *testing.T) {
	deleted := ""

	items := &mockItemRepository{
		GetFunc: func(_ context.Context, id string) (models.Item, error) {
			return models.Item{ID: id, Name: "Drill"}, nil
		},
		SetPhotoKeyFunc: func(_ context.Context, _ string, _ string) (models.Item, error) {
			return models.Item{}, errStorageDown
		},
	}
	photos := &mockPhotoStore{
		ReplaceFunc: func(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
			return "new.jpg", nil
		},
		DeleteFunc: func(_ context.Context, key string) error {
			deleted = key
			return nil
		},
	}

	svc := newTestService(items, photos)

	_, err := svc.ReplacePhoto(context.Background(), "id-1", &models.PhotoUpload{
		Content: strings.NewReader("jpeg"),
		Ext:     ".jpg",
	})
	assert.ErrorIs(t, err, errStorageDown)
	assert.Equal(t, "new.jpg", deleted)
}

func TestInventory_Delete_RemovesRecordThenPhoto(t *testing.T) {
	var calls []string

	items := &mockItemRepository{
		DeleteFunc: func(_ context.Context, id string) (models.Item, error) {
			calls = append(calls, "record")
			return models.Item{ID: id, Name: "Drill", PhotoKey: "key.jpg"}, nil
		},
	}
	photos := &mockPhotoStore{
		DeleteFunc: func(_ context.Context, key string) error {
			calls = append(calls, "photo")
			assert.Equal(t, "key.jpg", key)
			return nil
		},
	}

	svc := newTestService(items, photos)

	require.NoError(t, svc.Delete(context.Background(), "id-1"))
	assert.Equal(t, []string{"record", "photo"}, calls)
}

func TestInventory_Delete_UnknownItemTouchesNoFile(t *testing.T) {
	items := &mockItemRepository{
		DeleteFunc: func(_ context.Context, _ string) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}
	photos := &mockPhotoStore{
		DeleteFunc: func(_ context.Context, _ string) error {
			t.Fatal("no file may be deleted for an unknown item")
			return nil
		},
	}

	svc := newTestService(items, photos)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestInventory_Delete_PhotoFailureIsNotFatal(t *testing.T) {
	items := &mockItemRepository{
		DeleteFunc: func(_ context.Context, id string) (models.Item, error) {
			return models.Item{ID: id, PhotoKey: "key.jpg"}, nil
		},
	}
	photos := &mockPhotoStore{
		DeleteFunc: func(_ context.Context, _ string) error {
			return errStorageDown
		},
	}

	svc := newTestService(items, photos)

	// the record is gone; a failed file removal only leaves an orphan
	assert.NoError(t, svc.Delete(context.Background(), "id-1"))
}

func TestInventory_OpenPhoto_NoPhoto(t *testing.T) {
	items := &mockItemRepository{
		GetFunc: func(_ context.Context, id string) (models.Item, error) {
			return models.Item{ID: id, Name: "Drill"}, nil
		},
	}
	photos := &mockPhotoStore{
		OpenFunc: func(_ context.Context, _ string) (io.ReadCloser, error) {
			t.Fatal("open must not be attempted without a photo key")
			return nil, nil
		},
	}

	svc := newTestService(items, photos)

	_, err := svc.OpenPhoto(context.Background(), "id-1")
	assert.ErrorIs(t, err, store.ErrPhotoNotFound)
}

func TestInventory_OpenPhoto_StreamsContent(t *testing.T) {
	items := &mockItemRepository{
		GetFunc: func(_ context.Context, id string) (models.Item, error) {
			return models.Item{ID: id, Name: "Drill", PhotoKey: "key.jpg"}, nil
		},
	}
	photos := &mockPhotoStore{
		OpenFunc: func(_ context.Context, key string) (io.ReadCloser, error) {
			assert.Equal(t, "key.jpg", key)
			return io.NopCloser(strings.NewReader("jpeg bytes")), nil
		},
	}

	svc := newTestService(items, photos)

	rc, err := svc.OpenPhoto(context.Background(), "id-1")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestInventory_FindExact(t *testing.T) {
	items := &mockItemRepository{
		GetFunc: func(_ context.Context, id string) (models.Item, error) {
			if id != "id-1" {
				return models.Item{}, store.ErrItemNotFound
			}
			return models.Item{ID: id, Name: "Drill"}, nil
		},
	}

	svc := newTestService(items, &mockPhotoStore{})

	found, err := svc.FindExact(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Drill", found.Name)

	_, err = svc.FindExact(context.Background(), "other")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}
