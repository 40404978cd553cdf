package models

// GuestbookEntry is a guest-submitted message attached to one invitation.
// InvitationID is a declared reference only - inserts are not checked
// against the invitations table.
type GuestbookEntry struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	InvitationID uint64 `gorm:"index:guestbook_invitation_created,priority:1;not null" json:"invitationId"`
	Name         string `gorm:"type:varchar(200);not null" json:"name"`
	Message      string `gorm:"type:text;not null" json:"message"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;index:guestbook_invitation_created,priority:2" json:"createdAt"`
}
