package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/davolkov/inventar/internal/logger"
)

// keyExtPattern accepts a sanitized lowercase extension like ".jpg" or
// ".jpeg". Anything else is dropped rather than written into a filename.
var keyExtPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// saveAttempts bounds the number of key regenerations on the (vanishingly
// unlikely) event of a key collision.
const saveAttempts = 3

// photoStore is the filesystem implementation of [PhotoStore]. All files
// live directly under the configured cache root; keys are generated from the
// current time plus a random suffix, so no operation ever escapes the root.
type photoStore struct {
	root   string
	logger *logger.Logger
}

// NewPhotoStore constructs a [PhotoStore] rooted at dir, creating the
// directory if needed.
func NewPhotoStore(dir string, log *logger.Logger) (PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewPhotoStore").Str("dir", dir).Msg("failed to create photo cache directory")
		return nil, fmt.Errorf("creating photo cache directory: %w", err)
	}

	return &photoStore{
		root:   dir,
		logger: log,
	}, nil
}

// Save writes content under a freshly generated key. The file is created
// with O_EXCL so an existing key is never overwritten; on a collision a new
// key is generated and the write retried.
func (p *photoStore) Save(ctx context.Context, content io.Reader, originalExt string) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < saveAttempts; attempt++ {
		key := newPhotoKey(originalExt)

		f, err := os.OpenFile(filepath.Join(p.root, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "photoStore.Save").Str("key", key).Msg("failed to create photo file")
			return "", fmt.Errorf("%w: %w", ErrSavingPhoto, err)
		}

		if _, err := io.Copy(f, content); err != nil {
			f.Close()
			// a half-written file must not become retrievable
			if rmErr := os.Remove(filepath.Join(p.root, key)); rmErr != nil {
				log.Warn().Str("func", "photoStore.Save").Str("key", key).Msg("failed to remove partial photo file")
			}
			log.Err(err).Str("func", "photoStore.Save").Str("key", key).Msg("failed to write photo content")
			return "", fmt.Errorf("%w: %w", ErrSavingPhoto, err)
		}

		if err := f.Close(); err != nil {
			log.Err(err).Str("func", "photoStore.Save").Str("key", key).Msg("failed to close photo file")
			return "", fmt.Errorf("%w: %w", ErrSavingPhoto, err)
		}

		log.Debug().Str("func", "photoStore.Save").Str("key", key).Msg("saved photo")
		return key, nil
	}

	return "", fmt.Errorf("%w: key collision persisted after %d attempts", ErrSavingPhoto, saveAttempts)
}

// Replace saves the new content first and only then removes the old key.
// Old-key removal is best-effort: a failure is logged and the new key is
// still returned as valid.
func (p *photoStore) Replace(ctx context.Context, oldKey string, content io.Reader, originalExt string) (string, error) {
	log := logger.FromContext(ctx)

	newKey, err := p.Save(ctx, content, originalExt)
	if err != nil {
		return "", err
	}

	if oldKey != "" {
		if delErr := p.Delete(ctx, oldKey); delErr != nil {
			log.Warn().Err(delErr).
				Str("func", "photoStore.Replace").
				Str("old_key", oldKey).
				Str("new_key", newKey).
				Msg("failed to delete replaced photo, leaving orphan")
		}
	}

	return newKey, nil
}

// Delete removes the file for key. A file that is already gone is treated as
// success, making the operation idempotent.
func (p *photoStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if err := validatePhotoKey(key); err != nil {
		log.Warn().Str("func", "photoStore.Delete").Str("key", key).Msg("rejected photo key")
		return err
	}

	if err := os.Remove(filepath.Join(p.root, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "photoStore.Delete").Str("key", key).Msg("failed to delete photo file")
		return fmt.Errorf("deleting photo %q: %w", key, err)
	}

	return nil
}

// Open returns a readable handle to the stored photo, or [ErrPhotoNotFound]
// when the key is absent or the directory entry was removed externally.
func (p *photoStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	if err := validatePhotoKey(key); err != nil {
		log.Warn().Str("func", "photoStore.Open").Str("key", key).Msg("rejected photo key")
		return nil, err
	}

	f, err := os.Open(filepath.Join(p.root, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "photoStore.Open").Str("key", key).Msg("failed to open photo file")
		return nil, fmt.Errorf("opening photo %q: %w", key, err)
	}

	return f, nil
}

// Snapshot lists every stored photo with its modification time. Entries that
// disappear between the directory listing and the stat call are skipped.
func (p *photoStore) Snapshot(ctx context.Context) ([]PhotoInfo, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(p.root)
	if err != nil {
		log.Err(err).Str("func", "photoStore.Snapshot").Msg("failed to read photo cache directory")
		return nil, fmt.Errorf("reading photo cache directory: %w", err)
	}

	infos := make([]PhotoInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fi, statErr := entry.Info()
		if statErr != nil {
			continue
		}

		infos = append(infos, PhotoInfo{
			Key:     entry.Name(),
			ModTime: fi.ModTime(),
		})
	}

	return infos, nil
}

// newPhotoKey derives a collision-resistant key from the current UTC time, a
// random hex suffix and the sanitized original extension.
func newPhotoKey(originalExt string) string {
	suffix := make([]byte, 6)
	rand.Read(suffix)

	return time.Now().UTC().Format("20060102150405") + "-" + hex.EncodeToString(suffix) + sanitizeExt(originalExt)
}

// sanitizeExt lowercases the supplied extension and drops it entirely unless
// it matches the allowed pattern. Keys must never carry client-controlled
// path fragments.
func sanitizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !keyExtPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// validatePhotoKey rejects keys that are empty or could be interpreted as a
// path outside the cache root.
func validatePhotoKey(key string) error {
	if key == "" || key != filepath.Base(key) || strings.Contains(key, "..") {
		return ErrInvalidPhotoKey
	}
	return nil
}
