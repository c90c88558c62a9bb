package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"photomi/api/internal/models"
	"photomi/api/internal/repository"
)

// fakeCatalog is an in-memory Catalog used by the pipeline tests.
type fakeCatalog struct {
	mu        sync.Mutex
	nextID    int64
	photos    map[int64]models.Photo
	insertErr error
	deleteErr error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{photos: make(map[int64]models.Photo)}
}

func (c *fakeCatalog) Insert(_ context.Context, photo models.Photo) (models.Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.insertErr != nil {
		return models.Photo{}, c.insertErr
	}
	for _, existing := range c.photos {
		if existing.Filename == photo.Filename || existing.ThumbnailFilename == photo.ThumbnailFilename {
			return models.Photo{}, errors.New("unique constraint violation")
		}
	}
	c.nextID++
	photo.ID = c.nextID
	c.photos[photo.ID] = photo
	return photo, nil
}

func (c *fakeCatalog) GetByID(_ context.Context, id int64) (models.Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	photo, ok := c.photos[id]
	if !ok {
		return models.Photo{}, repository.ErrPhotoNotFound
	}
	return photo, nil
}

func (c *fakeCatalog) List(_ context.Context, limit, offset int) ([]models.Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := make([]models.Photo, 0, len(c.photos))
	for _, photo := range c.photos {
		all = append(all, photo)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (c *fakeCatalog) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deleteErr != nil {
		return c.deleteErr
	}
	if _, ok := c.photos[id]; !ok {
		return repository.ErrPhotoNotFound
	}
	delete(c.photos, id)
	return nil
}

func (c *fakeCatalog) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.photos)
}

// fakeStore is an in-memory ArtifactStore. failPutAfter makes the
// (n+1)th Put fail; presignFailKey breaks presigning for one key.
type fakeStore struct {
	mu             sync.Mutex
	objects        map[string][]byte
	puts           int
	failPutAfter   int
	removeErr      error
	presignFailKey string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte), failPutAfter: -1}
}

func (s *fakeStore) Put(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPutAfter >= 0 && s.puts >= s.failPutAfter {
		return errors.New("store rejected put")
	}
	s.puts++
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return nil
}

func (s *fakeStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presignFailKey != "" && key == s.presignFailKey {
		return "", errors.New("presign rejected")
	}
	return "https://signed.example/" + key, nil
}

func (s *fakeStore) get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

func (s *fakeStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
