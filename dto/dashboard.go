package dto

// DashboardStats tổng hợp số liệu cho trang quản trị
type DashboardStats struct {
	TotalStudents     int64               `json:"totalStudents"`
	TotalRooms        int64               `json:"totalRooms"`
	AvailableRooms    int64               `json:"availableRooms"`
	OccupancyRate     float64             `json:"occupancyRate"`
	PendingComplaints int64               `json:"pendingComplaints"`
	UnpaidFees        int64               `json:"unpaidFees"`
	CollectedRevenue  float64             `json:"collectedRevenue"`
	PendingRevenue    float64             `json:"pendingRevenue"`
	RecentComplaints  []ComplaintResponse `json:"recentComplaints"`
	ComplaintsByType  []CategoryCount     `json:"complaintsByCategory"`
	RoomsByStatus     []StatusCount       `json:"roomsByStatus"`
}

// CategoryCount đếm theo danh mục
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// StatusCount đếm theo trạng thái
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
