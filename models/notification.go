package models

import (
	"time"

	"github.com/lib/pq"
)

type Notification struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Message     string        `gorm:"not null" json:"message"`
	Type        string        `gorm:"default:info" json:"type"`
	Broadcast   bool          `gorm:"default:false" json:"broadcast"`
	TargetRole  string        `gorm:"default:all" json:"targetRole"`
	Recipients  pq.Int64Array `gorm:"type:integer[]" json:"recipients"`
	ReadBy      pq.Int64Array `gorm:"type:integer[]" json:"readBy"`
	CreatedByID uint          `gorm:"not null" json:"createdById"`
	CreatedBy   User          `gorm:"foreignKey:CreatedByID" json:"createdBy"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsReadBy kiểm tra user đã đọc thông báo chưa
func (n *Notification) IsReadBy(userID uint) bool {
	for _, id := range n.ReadBy {
		if uint(id) == userID {
			return true
		}
	}
	return false
}

// TargetsUser thông báo có gửi đến user này không
func (n *Notification) TargetsUser(userID uint, role string) bool {
	if n.Broadcast && (n.TargetRole == "all" || n.TargetRole == role) {
		return true
	}
	for _, id := range n.Recipients {
		if uint(id) == userID {
			return true
		}
	}
	return false
}
