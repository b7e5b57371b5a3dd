package dto

import (
	"encoding/json"
	"time"
)

// RoomRequest là DTO cho request tạo phòng
type RoomRequest struct {
	RoomNumber    string          `json:"roomNumber" binding:"required"`
	Block         string          `json:"block" binding:"required"`
	Floor         int             `json:"floor"`
	Type          string          `json:"type" binding:"omitempty,roomtype"`
	Capacity      int             `json:"capacity" binding:"required"`
	Status        string          `json:"status"`
	Amenities     json.RawMessage `json:"amenities"`
	PricePerMonth float64         `json:"pricePerMonth"`
	Description   string          `json:"description"`
}

// RoomUpdateRequest là DTO cho partial update, field số dùng pointer
// để phân biệt "không gửi" với giá trị 0
type RoomUpdateRequest struct {
	RoomNumber    *string         `json:"roomNumber"`
	Block         *string         `json:"block"`
	Floor         *int            `json:"floor"`
	Type          *string         `json:"type"`
	Capacity      *int            `json:"capacity"`
	Status        *string         `json:"status"`
	Amenities     json.RawMessage `json:"amenities"`
	PricePerMonth *float64        `json:"pricePerMonth"`
	Description   *string         `json:"description"`
}

// AllocateRequest là DTO cho request xếp/rút sinh viên
type AllocateRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}

// RoomResponse là DTO cho item trong danh sách phòng
type RoomResponse struct {
	ID               uint            `json:"id"`
	RoomNumber       string          `json:"roomNumber"`
	Block            string          `json:"block"`
	Floor            int             `json:"floor"`
	Type             string          `json:"type"`
	Capacity         int             `json:"capacity"`
	CurrentOccupants int             `json:"currentOccupants"`
	Status           string          `json:"status"`
	Amenities        json.RawMessage `json:"amenities,omitempty"`
	PricePerMonth    float64         `json:"pricePerMonth"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// RoomDetail là DTO cho chi tiết phòng kèm danh sách người ở
type RoomDetail struct {
	RoomResponse
	Description string           `json:"description"`
	IsAvailable bool             `json:"isAvailable"`
	Occupants   []StudentSummary `json:"occupants"`
}
