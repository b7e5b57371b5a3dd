package dto

import "time"

// UserResponse là DTO cho user trong danh sách quản trị
type UserResponse struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Role       string       `json:"role"`
	Phone      string       `json:"phone,omitempty"`
	Avatar     string       `json:"avatar,omitempty"`
	StudentID  string       `json:"studentId,omitempty"`
	Block      string       `json:"block,omitempty"`
	Department string       `json:"department,omitempty"`
	Year       string       `json:"year,omitempty"`
	IsActive   bool         `json:"isActive"`
	Room       *RoomSummary `json:"room,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// StudentUpdateRequest các field admin sửa được trên hồ sơ sinh viên
type StudentUpdateRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	StudentID   *string `json:"studentId"`
	Department  *string `json:"department"`
	Year        *string `json:"year"`
	ParentName  *string `json:"parentName"`
	ParentPhone *string `json:"parentPhone"`
	Address     *string `json:"address"`
	IsActive    *bool   `json:"isActive"`
}
