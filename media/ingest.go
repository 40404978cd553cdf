package media

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wedinvite/config"
	"wedinvite/storage"
	"wedinvite/utils"
)

// PublicPrefix is the path under which ingested files are served back.
const PublicPrefix = "/uploads/"

const thumbMaxSize = 640

var ErrFileTooLarge = errors.New("uploaded file is too large")

// Ingest converts uploaded files into durable, publicly addressable
// resources on a Storage backend.
type Ingest struct {
	Store   storage.Storage
	MaxSize int64 // per file, bytes
}

func NewIngest(store storage.Storage) *Ingest {
	return &Ingest{
		Store:   store,
		MaxSize: int64(config.MAX_UPLOAD_SIZE),
	}
}

// SaveUpload stores one uploaded file and returns its public path.
// The generated name combines the form field, a millisecond timestamp and a
// random suffix, so concurrent uploads never need to coordinate.
func (in *Ingest) SaveUpload(field string, file *multipart.FileHeader) (string, error) {
	if file.Size > in.MaxSize {
		return "", fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, file.Filename, file.Size, in.MaxSize)
	}
	name := field + "-" +
		strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" +
		utils.RandomSuffix(1_000_000_000) +
		safeExt(file.Filename)

	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()
	if _, err := in.Store.Save(name, reader); err != nil {
		return "", err
	}
	return PublicPrefix + name, nil
}

// SaveAll ingests all photos (in upload order) and the optional music file.
// Persistence is all-or-nothing: if any file fails, everything already
// written for this request is deleted before returning the error.
func (in *Ingest) SaveAll(photos []*multipart.FileHeader, music *multipart.FileHeader) (photoURLs []string, musicURL *string, err error) {
	var saved []string
	fail := func(err error) ([]string, *string, error) {
		for _, url := range saved {
			in.Remove(url)
		}
		return nil, nil, err
	}

	photoURLs = []string{}
	for _, photo := range photos {
		url, err := in.SaveUpload("photos", photo)
		if err != nil {
			return fail(err)
		}
		saved = append(saved, url)
		photoURLs = append(photoURLs, url)
		in.createThumb(url)
	}
	if music != nil {
		url, err := in.SaveUpload("musicFile", music)
		if err != nil {
			return fail(err)
		}
		saved = append(saved, url)
		musicURL = &url
	}
	return photoURLs, musicURL, nil
}

// Remove deletes the stored file behind a public path, and its thumbnail
// if one was generated.
func (in *Ingest) Remove(publicURL string) {
	name := strings.TrimPrefix(publicURL, PublicPrefix)
	if err := in.Store.Delete(name); err != nil {
		log.Printf("cannot delete %s: %v", name, err)
	}
	thumb := ThumbName(name)
	if in.Store.Exists(thumb) {
		_ = in.Store.Delete(thumb)
	}
}

// RemoveAll cleans up every file ingested for one creation request.
func (in *Ingest) RemoveAll(photoURLs []string, musicURL *string) {
	for _, url := range photoURLs {
		in.Remove(url)
	}
	if musicURL != nil {
		in.Remove(*musicURL)
	}
}

// ThumbName returns the thumbnail name for a stored photo.
// Thumbs are always JPEG.
func ThumbName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + "_thumb.jpg"
}

// ThumbURL returns the public path of a photo's thumbnail.
func ThumbURL(publicURL string) string {
	return PublicPrefix + ThumbName(strings.TrimPrefix(publicURL, PublicPrefix))
}

// createThumb generates a gallery thumbnail next to an ingested photo.
// Failures are logged and ignored - the full-size photo is already durable
// and the gallery falls back to it.
func (in *Ingest) createThumb(publicURL string) {
	name := strings.TrimPrefix(publicURL, PublicPrefix)
	reader, err := in.Store.Open(name)
	if err != nil {
		log.Printf("cannot re-open %s for thumbnailing: %v", name, err)
		return
	}
	defer reader.Close()

	var thumb bytes.Buffer
	if _, err := utils.CreateThumb(thumbMaxSize, reader, &thumb); err != nil {
		log.Printf("cannot create thumb for %s: %v", name, err)
		return
	}
	if _, err := in.Store.Save(ThumbName(name), &thumb); err != nil {
		log.Printf("cannot save thumb for %s: %v", name, err)
	}
}

func safeExt(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	var clean strings.Builder
	for _, c := range ext {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '.' {
			clean.WriteRune(c)
		}
	}
	return clean.String()
}
