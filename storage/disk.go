package storage

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
)

type DiskStorage struct {
	// BasePath is a directory writable by the current process.
	// It is created on the first write.
	BasePath string

	created   bool
	createdMu sync.Mutex
}

func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{BasePath: basePath}
}

func (s *DiskStorage) ensureDir() error {
	s.createdMu.Lock()
	defer s.createdMu.Unlock()

	if s.created {
		return nil
	}
	if err := os.MkdirAll(s.BasePath, 0777); err != nil {
		return err
	}
	s.created = true
	return nil
}

func (s *DiskStorage) fullPath(name string) string {
	return filepath.Join(s.BasePath, name)
}

func (s *DiskStorage) Save(name string, reader io.Reader) (int64, error) {
	if err := s.ensureDir(); err != nil {
		return 0, err
	}
	file, err := os.Create(s.fullPath(name))
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

func (s *DiskStorage) Open(name string) (io.ReadCloser, error) {
	return os.Open(s.fullPath(name))
}

func (s *DiskStorage) Serve(name string, request *http.Request, writer http.ResponseWriter) {
	http.ServeFile(writer, request, s.fullPath(name))
}

func (s *DiskStorage) Delete(name string) error {
	return os.Remove(s.fullPath(name))
}

func (s *DiskStorage) Exists(name string) bool {
	_, err := os.Stat(s.fullPath(name))
	return err == nil
}
