package dto

import "time"

// ComplaintRequest là DTO cho request tạo khiếu nại
type ComplaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
}

// ComplaintUpdateRequest các field admin/warden cập nhật được
type ComplaintUpdateRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *uint   `json:"assignedTo"`
	Remarks    *string `json:"remarks"`
}

// ComplaintResponse là DTO cho khiếu nại trong response
type ComplaintResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	Student     StudentSummary `json:"student"`
	RoomNumber  string         `json:"roomNumber,omitempty"`
	AssignedTo  *UserSummary   `json:"assignedTo,omitempty"`
	Remarks     string         `json:"remarks,omitempty"`
	ResolvedAt  *time.Time     `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
