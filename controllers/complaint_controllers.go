package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/validator"
)

func toComplaintResponse(cp *models.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		ID:          cp.ID,
		Title:       cp.Title,
		Description: cp.Description,
		Category:    cp.Category,
		Status:      cp.Status,
		Priority:    cp.Priority,
		Student:     toStudentSummary(&cp.Student),
		RoomNumber:  cp.RoomNumber,
		AssignedTo:  toUserSummary(cp.AssignedTo),
		Remarks:     cp.Remarks,
		ResolvedAt:  cp.ResolvedAt,
		CreatedAt:   cp.CreatedAt,
		UpdatedAt:   cp.UpdatedAt,
	}
}

// GetComplaints godoc
// @Summary Danh sách khiếu nại, sinh viên chỉ thấy của mình
// @Tags complaints
// @Security BearerAuth
// @Param status query string false "Lọc theo trạng thái"
// @Param category query string false "Lọc theo danh mục"
// @Param priority query string false "Lọc theo mức ưu tiên"
// @Param page query int false "Trang"
// @Param limit query int false "Số item mỗi trang"
// @Success 200 {object} response.Response
// @Router /api/complaints [get]
func GetComplaints(c *gin.Context) {
	userID, role := middlewareUser(c)

	query := config.DB.Model(&models.Complaint{})
	if role == constants.RoleStudent {
		query = query.Where("student_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Error counting complaints: %v", err)
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var complaints []models.Complaint
	err := query.Preload("Student").Preload("AssignedTo").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&complaints).Error
	if err != nil {
		log.Printf("Error retrieving complaints: %v", err)
		response.ServerError(c)
		return
	}

	results := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		results = append(results, toComplaintResponse(&complaints[i]))
	}

	response.SuccessWithPagination(c, results, total, page, limit)
}

// CreateComplaint godoc
// @Summary Sinh viên tạo khiếu nại, số phòng tự điền theo phòng đang ở
// @Tags complaints
// @Security BearerAuth
// @Param body body dto.ComplaintRequest true "Complaint"
// @Success 201 {object} response.Response
// @Router /api/complaints [post]
func CreateComplaint(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var req dto.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var student models.User
	if err := config.DB.Preload("Room").First(&student, userID).Error; err != nil {
		response.NotFound(c, "Student not found")
		return
	}

	complaint := models.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      constants.ComplaintStatusPending,
		Priority:    req.Priority,
		StudentID:   userID,
	}
	if complaint.Priority == "" {
		complaint.Priority = constants.PriorityMedium
	}
	if student.Room != nil {
		complaint.RoomNumber = student.Room.RoomNumber
	}

	if err := validator.ValidateComplaint(&complaint); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Create(&complaint).Error; err != nil {
		log.Printf("Error creating complaint: %v", err)
		response.ServerError(c)
		return
	}

	complaint.Student = student
	response.CreatedWithMessage(c, toComplaintResponse(&complaint), "Complaint submitted successfully")
}

// UpdateComplaint godoc
// @Summary Admin/warden cập nhật trạng thái khiếu nại
// @Tags complaints
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param body body dto.ComplaintUpdateRequest true "Fields"
// @Success 200 {object} response.Response
// @Router /api/complaints/{id} [put]
func UpdateComplaint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ComplaintUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var complaint models.Complaint
	if err := config.DB.Preload("Student").First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Complaint not found")
			return
		}
		response.ServerError(c)
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case constants.ComplaintStatusPending, constants.ComplaintStatusInProgress,
			constants.ComplaintStatusResolved, constants.ComplaintStatusRejected:
		default:
			response.BadRequest(c, "Invalid complaint status")
			return
		}
		complaint.Status = *req.Status
		if *req.Status == constants.ComplaintStatusResolved && complaint.ResolvedAt == nil {
			now := time.Now()
			complaint.ResolvedAt = &now
		}
	}
	if req.Priority != nil {
		complaint.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		var assignee models.User
		err := config.DB.Where("role IN ?", []string{constants.RoleAdmin, constants.RoleWarden}).
			First(&assignee, *req.AssignedTo).Error
		if err != nil {
			response.BadRequest(c, "Assignee must be an admin or warden")
			return
		}
		complaint.AssignedToID = req.AssignedTo
		complaint.AssignedTo = &assignee
	}
	if req.Remarks != nil {
		complaint.Remarks = *req.Remarks
	}

	if err := config.DB.Save(&complaint).Error; err != nil {
		log.Printf("Error updating complaint: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, toComplaintResponse(&complaint), "Complaint updated successfully")
}

// DeleteComplaint godoc
// @Summary Admin xóa khiếu nại
// @Tags complaints
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} response.Response
// @Router /api/complaints/{id} [delete]
func DeleteComplaint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Complaint{}, id)
	if result.Error != nil {
		log.Printf("Error deleting complaint: %v", result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Complaint not found")
		return
	}

	response.SuccessMessage(c, "Complaint deleted successfully")
}
