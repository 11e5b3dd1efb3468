package model

// ManagerProfile is the signed-in manager as returned by /manager/profile.
type ManagerProfile struct {
	UserID           string `json:"userId" gorm:"primaryKey;size:36"`
	Name             string `json:"name" gorm:"size:128;not null"`
	Email            string `json:"email" gorm:"size:256;not null"`
	Role             string `json:"role" gorm:"size:32;not null"`
	AvailableCredits int    `json:"availableCredits" gorm:"not null"`
}

// TableName keeps the dev backend's table name stable.
func (ManagerProfile) TableName() string {
	return "managers"
}
