package models

import "time"

type Complaint struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"not null" json:"description"`
	Category     string     `gorm:"not null" json:"category"`
	Status       string     `gorm:"default:pending" json:"status"`
	Priority     string     `gorm:"default:medium" json:"priority"`
	StudentID    uint       `gorm:"index;not null" json:"studentId"`
	Student      User       `gorm:"foreignKey:StudentID" json:"student"`
	RoomNumber   string     `json:"roomNumber"`
	AssignedToID *uint      `json:"assignedToId,omitempty"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	Remarks      string     `json:"remarks"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
