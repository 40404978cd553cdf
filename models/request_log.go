package models

// RequestLog keeps an audit row per API request.
type RequestLog struct {
	ID        uint64 `gorm:"primaryKey"`
	RequestID string `gorm:"type:varchar(40)"`
	Method    string `gorm:"type:varchar(10)"`
	Path      string `gorm:"type:varchar(300)"`
	Status    int
	Duration  int64  // milliseconds
	Response  string `gorm:"type:text"` // truncated response body
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}
