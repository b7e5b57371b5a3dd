package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hostelhub/constants"
)

type Room struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	RoomNumber    string          `json:"roomNumber" gorm:"uniqueIndex;not null"`
	Block         string          `json:"block" gorm:"index;not null"`
	Floor         int             `json:"floor"`
	Type          string          `json:"type" gorm:"default:double"`
	Capacity      int             `json:"capacity"`
	Occupants     []User          `json:"occupants" gorm:"foreignKey:RoomID"`
	Status        string          `json:"status" gorm:"default:available"`
	Amenities     json.RawMessage `json:"amenities" gorm:"type:json"`
	PricePerMonth float64         `json:"pricePerMonth"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CurrentOccupants số sinh viên đang ở trong phòng
func (r *Room) CurrentOccupants() int {
	return len(r.Occupants)
}

// IsAvailable phòng còn nhận sinh viên hay không
func (r *Room) IsAvailable() bool {
	return r.Status == constants.RoomStatusAvailable && len(r.Occupants) < r.Capacity
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusFull,
		constants.RoomStatusMaintenance, constants.RoomStatusReserved:
		return nil
	}
	return fmt.Errorf("invalid status: %s", r.Status)
}

func (r *Room) ValidateType() error {
	for _, t := range constants.RoomTypes {
		if r.Type == t {
			return nil
		}
	}
	return fmt.Errorf("invalid room type: %s", r.Type)
}
