package models

import "time"

type Fee struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	StudentID     uint       `gorm:"index;not null" json:"studentId"`
	Student       User       `gorm:"foreignKey:StudentID" json:"student"`
	Amount        float64    `json:"amount"`
	Month         string     `gorm:"not null" json:"month"`
	Year          int        `gorm:"not null" json:"year"`
	Status        string     `gorm:"default:unpaid" json:"status"`
	PaidAmount    float64    `gorm:"default:0" json:"paidAmount"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId"`
	DueDate       time.Time  `gorm:"not null" json:"dueDate"`
	Remarks       string     `json:"remarks"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
