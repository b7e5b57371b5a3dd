package controllers

import (
	"log"
	"math"

	"github.com/gin-gonic/gin"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
)

// GetDashboardStats godoc
// @Summary Số liệu tổng hợp cho trang quản trị
// @Tags dashboard
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	db := config.DB
	var stats dto.DashboardStats

	if err := db.Model(&models.User{}).
		Where("role = ? AND is_active = ?", constants.RoleStudent, true).
		Count(&stats.TotalStudents).Error; err != nil {
		log.Printf("Error counting students: %v", err)
		response.ServerError(c)
		return
	}

	if err := db.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		log.Printf("Error counting rooms: %v", err)
		response.ServerError(c)
		return
	}

	db.Model(&models.Room{}).
		Where("status = ?", constants.RoomStatusAvailable).
		Count(&stats.AvailableRooms)

	// Tỷ lệ lấp đầy tính trên tổng sức chứa
	var totalCapacity, allocated int64
	db.Model(&models.Room{}).Select("COALESCE(SUM(capacity), 0)").Scan(&totalCapacity)
	db.Model(&models.User{}).
		Where("role = ? AND room_id IS NOT NULL", constants.RoleStudent).
		Count(&allocated)
	if totalCapacity > 0 {
		rate := float64(allocated) / float64(totalCapacity) * 100
		stats.OccupancyRate = math.Round(rate*100) / 100
	}

	db.Model(&models.Complaint{}).
		Where("status IN ?", []string{constants.ComplaintStatusPending, constants.ComplaintStatusInProgress}).
		Count(&stats.PendingComplaints)

	db.Model(&models.Fee{}).
		Where("status IN ?", []string{constants.FeeStatusUnpaid, constants.FeeStatusPartial, constants.FeeStatusOverdue}).
		Count(&stats.UnpaidFees)

	db.Model(&models.Fee{}).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&stats.CollectedRevenue)
	db.Model(&models.Fee{}).
		Select("COALESCE(SUM(amount - paid_amount), 0)").
		Where("status != ?", constants.FeeStatusPaid).
		Scan(&stats.PendingRevenue)

	var recent []models.Complaint
	db.Preload("Student").Preload("AssignedTo").
		Order("created_at DESC").
		Limit(5).
		Find(&recent)
	stats.RecentComplaints = make([]dto.ComplaintResponse, 0, len(recent))
	for i := range recent {
		stats.RecentComplaints = append(stats.RecentComplaints, toComplaintResponse(&recent[i]))
	}

	db.Model(&models.Complaint{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&stats.ComplaintsByType)

	db.Model(&models.Room{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats.RoomsByStatus)

	response.Success(c, stats)
}
