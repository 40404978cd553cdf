package services

import (
	"context"
	"fmt"
	"strings"

	"wedinvite/models"

	"gorm.io/gorm"
)

// GuestbookService appends and lists guest messages. Entries are never
// mutated or deleted. The invitation id is not verified against the
// invitations table before insert.
type GuestbookService struct {
	db *gorm.DB
}

func NewGuestbookService(db *gorm.DB) *GuestbookService {
	return &GuestbookService{db: db}
}

func (s *GuestbookService) AddEntry(ctx context.Context, invitationID uint64, name, message string) (*models.GuestbookEntry, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}
	entry := models.GuestbookEntry{
		InvitationID: invitationID,
		Name:         name,
		Message:      message,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("saving guestbook entry: %w", err)
	}
	return &entry, nil
}

// ListEntries returns all entries for an invitation, most recent first.
// No entries is an empty list, never an error.
func (s *GuestbookService) ListEntries(ctx context.Context, invitationID uint64) ([]models.GuestbookEntry, error) {
	entries := []models.GuestbookEntry{}
	err := s.db.WithContext(ctx).
		Where("invitation_id = ?", invitationID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("loading guestbook for invitation %d: %w", invitationID, err)
	}
	return entries, nil
}
