package dto

import "time"

// NotificationRequest là DTO cho request tạo thông báo
type NotificationRequest struct {
	Title      string  `json:"title" binding:"required"`
	Message    string  `json:"message" binding:"required"`
	Type       string  `json:"type"`
	Broadcast  bool    `json:"broadcast"`
	TargetRole string  `json:"targetRole"`
	Recipients []int64 `json:"recipients"`
}

// NotificationResponse là DTO cho thông báo trong response,
// isRead được tính theo người dùng đang đăng nhập
type NotificationResponse struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	Type       string       `json:"type"`
	Broadcast  bool         `json:"broadcast"`
	TargetRole string       `json:"targetRole"`
	IsRead     bool         `json:"isRead"`
	CreatedBy  *UserSummary `json:"createdBy,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// UnreadCountResponse cho endpoint đếm thông báo chưa đọc
type UnreadCountResponse struct {
	Count int `json:"count"`
}
