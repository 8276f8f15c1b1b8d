package services

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/helpers"
	"TrailGuide/internal/models"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

type StoredFile struct {
	FileName string
	Size     int64
	SHA1     string
}

// AssetStorage keeps asset binaries. It is not transactional with the
// database; files left behind by failed writes are tolerated.
type AssetStorage interface {
	Store(src io.Reader, fileName string) (*StoredFile, error)
	Open(fileName string) (*os.File, error)
	Delete(fileName string) error
	Path(fileName string) string
}

type FileStorage struct {
	root string
	now  func() time.Time
}

func NewFileStorage(configuration *config.Configuration) AssetStorage {
	return &FileStorage{root: configuration.Storage.AssetPath, now: time.Now}
}

func (s *FileStorage) Store(src io.Reader, fileName string) (*StoredFile, error) {
	if err := os.MkdirAll(s.root, os.ModePerm); err != nil {
		return nil, &models.StorageError{Op: "create asset folder", Err: err}
	}
	storedName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), helpers.SanitizeFileName(fileName))
	size, sha1sum, err := helpers.SaveFileAndComputeChecksum(src, s.Path(storedName))
	if err != nil {
		_ = helpers.DeleteFile(s.Path(storedName))
		return nil, &models.StorageError{Op: "save asset file", Err: err}
	}
	return &StoredFile{FileName: storedName, Size: size, SHA1: sha1sum}, nil
}

func (s *FileStorage) Open(fileName string) (*os.File, error) {
	f, err := os.Open(s.Path(fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NotFound("asset file", fileName)
		}
		return nil, &models.StorageError{Op: "open asset file", Err: err}
	}
	return f, nil
}

func (s *FileStorage) Delete(fileName string) error {
	if err := helpers.DeleteFile(s.Path(fileName)); err != nil {
		return &models.StorageError{Op: "delete asset file", Err: err}
	}
	return nil
}

func (s *FileStorage) Path(fileName string) string {
	return filepath.Join(s.root, filepath.Base(fileName))
}
