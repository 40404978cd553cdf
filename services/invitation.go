package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"wedinvite/config"
	"wedinvite/media"
	"wedinvite/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CreateInvitationInput carries the validated creation form.
type CreateInvitationInput struct {
	BrideNames string
	GroomNames string
	Date       int64 // Unix milliseconds
	Venue      string
	TemplateID string
	Photos     []*multipart.FileHeader
	Music      *multipart.FileHeader // optional
}

// InvitationService orchestrates validation, media ingest, slug derivation
// and persistence of invitations.
type InvitationService struct {
	db     *gorm.DB
	ingest *media.Ingest
}

func NewInvitationService(db *gorm.DB, ingest *media.Ingest) *InvitationService {
	return &InvitationService{db: db, ingest: ingest}
}

// MakeSlug derives the public identifier from the couple's names:
// lowercase, hyphen-separated, nothing outside [a-z0-9-]. Deterministic -
// two couples with identical names collide and the second insert fails.
func MakeSlug(brideNames, groomNames string) string {
	return slug.Make(brideNames + "-" + groomNames)
}

func validateCreate(in CreateInvitationInput) error {
	if strings.TrimSpace(in.BrideNames) == "" {
		return ErrBrideNamesRequired
	}
	if strings.TrimSpace(in.GroomNames) == "" {
		return ErrGroomNamesRequired
	}
	if in.Date <= 0 {
		return ErrDateRequired
	}
	if strings.TrimSpace(in.Venue) == "" {
		return ErrVenueRequired
	}
	if !models.ValidTemplate(in.TemplateID) {
		return ErrTemplateUnknown
	}
	// The photo count is checked before a single byte is written
	if len(in.Photos) == 0 {
		return ErrNoPhotos
	}
	if len(in.Photos) > config.MAX_PHOTOS {
		return ErrTooManyPhotos
	}
	return nil
}

// Create stores the media files, derives the slug, persists the row and
// returns it re-read from the database (with generated id and timestamps).
func (s *InvitationService) Create(ctx context.Context, in CreateInvitationInput) (*models.Invitation, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	photoURLs, musicURL, err := s.ingest.SaveAll(in.Photos, in.Music)
	if err != nil {
		return nil, fmt.Errorf("storing uploads: %w", err)
	}

	invitation := models.Invitation{
		Slug:       MakeSlug(in.BrideNames, in.GroomNames),
		BrideNames: in.BrideNames,
		GroomNames: in.GroomNames,
		Date:       in.Date,
		Venue:      in.Venue,
		Photos:     photoURLs,
		MusicURL:   musicURL,
		TemplateID: in.TemplateID,
	}
	if err := s.db.WithContext(ctx).Create(&invitation).Error; err != nil {
		// No row was written - the files must not outlive the request
		s.ingest.RemoveAll(photoURLs, musicURL)
		if isDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("saving invitation: %w", err)
	}

	var stored models.Invitation
	if err := s.db.WithContext(ctx).First(&stored, invitation.ID).Error; err != nil {
		return nil, fmt.Errorf("re-reading invitation %d: %w", invitation.ID, err)
	}
	log.Printf("invitation created: id=%d slug=%s photos=%d", stored.ID, stored.Slug, len(stored.Photos))
	return &stored, nil
}

// GetBySlug looks up an invitation by its unique slug.
// A missing row is an expected outcome (ErrInvitationNotFound), distinct
// from an internal failure.
func (s *InvitationService) GetBySlug(ctx context.Context, slugValue string) (*models.Invitation, error) {
	if slugValue == "" {
		return nil, ErrInvitationNotFound
	}
	var invitation models.Invitation
	err := s.db.WithContext(ctx).Where("slug = ?", slugValue).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("loading invitation %q: %w", slugValue, err)
	}
	return &invitation, nil
}

// isDuplicateKey recognizes a unique-constraint violation on both engines.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "Duplicate entry") // MySQL
}
