package dto

// StudentSummary thông tin rút gọn của sinh viên trong các response
type StudentSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"studentId,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// RoomSummary thông tin rút gọn của phòng trong các response
type RoomSummary struct {
	ID         uint   `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Block      string `json:"block"`
	Floor      int    `json:"floor"`
	Type       string `json:"type"`
}

// UserSummary thông tin rút gọn của người tạo
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
