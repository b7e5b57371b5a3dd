package dto

import "time"

// FeeRequest là DTO cho request tạo khoản phí
type FeeRequest struct {
	StudentID uint      `json:"studentId" binding:"required"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	Month     string    `json:"month" binding:"required,month"`
	Year      int       `json:"year" binding:"required"`
	DueDate   time.Time `json:"dueDate" binding:"required"`
	Remarks   string    `json:"remarks"`
}

// BulkFeeRequest tạo phí hàng loạt cho tất cả sinh viên đang hoạt động
type BulkFeeRequest struct {
	Amount  float64   `json:"amount" binding:"required,gt=0"`
	Month   string    `json:"month" binding:"required,month"`
	Year    int       `json:"year" binding:"required"`
	DueDate time.Time `json:"dueDate" binding:"required"`
}

// FeePaymentRequest ghi nhận thanh toán
type FeePaymentRequest struct {
	PaidAmount    float64 `json:"paidAmount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

// FeeUpdateRequest các field admin cập nhật được
type FeeUpdateRequest struct {
	Amount  *float64   `json:"amount"`
	Status  *string    `json:"status"`
	DueDate *time.Time `json:"dueDate"`
	Remarks *string    `json:"remarks"`
}

// FeeResponse là DTO cho khoản phí trong response
type FeeResponse struct {
	ID            uint           `json:"id"`
	Student       StudentSummary `json:"student"`
	Amount        float64        `json:"amount"`
	Month         string         `json:"month"`
	Year          int            `json:"year"`
	Status        string         `json:"status"`
	PaidAmount    float64        `json:"paidAmount"`
	PaidAt        *time.Time     `json:"paidAt,omitempty"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	TransactionID string         `json:"transactionId,omitempty"`
	DueDate       time.Time      `json:"dueDate"`
	Remarks       string         `json:"remarks,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}
