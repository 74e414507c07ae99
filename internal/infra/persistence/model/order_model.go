package model

import "time"

// OrderModel mirrors the 'orders' table. The service FK is RESTRICT so a
// referenced service cannot be deleted out from under its orders.
type OrderModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null"`
	ClientName    string `gorm:"type:varchar(255)"`
	ClientEmail   string `gorm:"type:varchar(255)"`
	ServiceID     *int64
	Status        string  `gorm:"type:varchar(50);not null;default:Pending"`
	PaymentStatus string  `gorm:"type:varchar(50);not null;default:Pending"`
	PaymentMethod string  `gorm:"type:varchar(50);not null;default:Cash"`
	TotalPrice    float64 `gorm:"not null;default:0"`
	Notes         string  `gorm:"type:text"`
	OrderDate     time.Time
	DeliveryDate  *time.Time
	CreatedByID   int64 `gorm:"not null"`

	User      *UserModel    `gorm:"foreignKey:UserID"`
	Service   *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
	CreatedBy *UserModel    `gorm:"foreignKey:CreatedByID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
