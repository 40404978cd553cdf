package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PhotoList is an ordered list of public photo URLs, stored as a JSON array
// in a single text column. The list is small (at most a handful of entries)
// so it is not normalized into a child table.
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	return json.Marshal(p)
}

func (p *PhotoList) Scan(value interface{}) error {
	if value == nil {
		*p = PhotoList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("cannot scan %T into PhotoList", value)
}

// Invitation describes one wedding event and its presentation. Rows are
// created once by the creation flow and never updated or deleted.
type Invitation struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Slug       string    `gorm:"type:varchar(300);index:uniq_slug,unique;not null" json:"slug"`
	BrideNames string    `gorm:"type:varchar(300);not null" json:"brideNames"`
	GroomNames string    `gorm:"type:varchar(300);not null" json:"groomNames"`
	Date       int64     `gorm:"not null" json:"date"` // Unix milliseconds
	Venue      string    `gorm:"type:varchar(500);not null" json:"venue"`
	Photos     PhotoList `gorm:"type:text" json:"photos"`
	MusicURL   *string   `gorm:"type:varchar(500)" json:"musicUrl"`
	TemplateID string    `gorm:"type:varchar(50);not null" json:"templateId"`
	CreatedAt  int64     `gorm:"autoCreateTime:milli" json:"createdAt"`
	UpdatedAt  int64     `gorm:"autoUpdateTime:milli" json:"updatedAt"`
}
