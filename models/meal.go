package models

import "time"

type Meal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Day         string    `gorm:"uniqueIndex:idx_day_week;not null" json:"day"`
	Breakfast   string    `gorm:"default:'Not set'" json:"breakfast"`
	Lunch       string    `gorm:"default:'Not set'" json:"lunch"`
	Dinner      string    `gorm:"default:'Not set'" json:"dinner"`
	Snacks      string    `gorm:"default:'Not set'" json:"snacks"`
	CreatedByID *uint     `json:"createdById,omitempty"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	WeekLabel   string    `gorm:"uniqueIndex:idx_day_week;default:'Current Week'" json:"weekLabel"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
