package storage

import (
	"fmt"
	"io"
	"net/http"

	"wedinvite/config"
)

// Storage persists uploaded media under flat names and serves it back.
// Names are generated by the media package and never contain separators.
type Storage interface {
	Save(name string, reader io.Reader) (int64, error)
	Open(name string) (io.ReadCloser, error)
	Serve(name string, request *http.Request, writer http.ResponseWriter)
	Delete(name string) error
	Exists(name string) bool
}

// New picks the backend from the configuration.
func New() (Storage, error) {
	switch config.STORAGE_TYPE {
	case "disk":
		return NewDiskStorage(config.UPLOAD_DIR), nil
	case "s3":
		if config.S3_BUCKET == "" {
			return nil, fmt.Errorf("S3_BUCKET must be set when STORAGE_TYPE is s3")
		}
		return NewS3Storage(config.S3_BUCKET)
	}
	return nil, fmt.Errorf("unknown storage type %q", config.STORAGE_TYPE)
}
