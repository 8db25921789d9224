package history

import "time"

// Run is one recorded reconciliation.
type Run struct {
	ID        string `gorm:"primaryKey;size:36"`
	Username  string `gorm:"size:64;index"`
	DayKey    string `gorm:"size:8;index"`
	Date      string `gorm:"size:10"`
	Followers int
	Gained    int
	Removed   int
	Outcome   string `gorm:"size:16"`
	CreatedAt time.Time
}

// TableName overrides the GORM default pluralization.
func (Run) TableName() string {
	return "runs"
}
