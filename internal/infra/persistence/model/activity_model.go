package model

import "time"

// ActivityLogModel mirrors the 'activity_logs' table. Rows are only ever
// inserted; the application never updates or deletes them.
type ActivityLogModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UserID         int64  `gorm:"not null;index"`
	Role           string `gorm:"type:varchar(50);not null"`
	Action         string `gorm:"type:varchar(50);not null;index"`
	ActionDetails  string `gorm:"type:varchar(255)"`
	TargetEntity   string `gorm:"type:varchar(100)"`
	TargetEntityID int64
	Description    string `gorm:"type:text"`
	CreatedAt      time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
