package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Role        string    `gorm:"default:student" json:"role"`
	Phone       string    `gorm:"type:varchar(15)" json:"phone"`
	Avatar      string    `json:"avatar"`
	StudentID   *string   `gorm:"uniqueIndex" json:"studentId,omitempty"`
	RoomID      *uint     `json:"roomId,omitempty"`
	Room        *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Block       string    `json:"block"`
	ParentName  string    `json:"parentName"`
	ParentPhone string    `json:"parentPhone"`
	Address     string    `json:"address"`
	Department  string    `json:"department"`
	Year        string    `json:"year"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
