package constants

// User roles
const (
	RoleAdmin   = "admin"
	RoleWarden  = "warden"
	RoleStudent = "student"
)

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusFull        = "full"
	RoomStatusMaintenance = "maintenance"
	RoomStatusReserved    = "reserved"
)

// Room types
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTriple = "triple"
	RoomTypeQuad   = "quad"
)

// Complaint status
const (
	ComplaintStatusPending    = "pending"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusRejected   = "rejected"
)

// Complaint priority
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Fee status
const (
	FeeStatusPaid    = "paid"
	FeeStatusUnpaid  = "unpaid"
	FeeStatusPartial = "partial"
	FeeStatusOverdue = "overdue"
)

// Notification types
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationAlert   = "alert"
	NotificationSuccess = "success"
)

// RoomTypes liệt kê theo thứ tự sức chứa — dùng cho validate và gợi ý tìm kiếm
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeQuad}

// ComplaintCategories các loại khiếu nại hợp lệ
var ComplaintCategories = []string{
	"maintenance", "electrical", "plumbing", "cleaning",
	"noise", "security", "internet", "other",
}

// Months tên tháng hợp lệ cho phí
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Days thứ tự các ngày trong tuần cho lịch ăn
var Days = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
