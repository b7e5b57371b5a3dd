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
	"hostelhub/services"
	"hostelhub/validator"
)

func toFeeResponse(fee *models.Fee) dto.FeeResponse {
	return dto.FeeResponse{
		ID:            fee.ID,
		Student:       toStudentSummary(&fee.Student),
		Amount:        fee.Amount,
		Month:         fee.Month,
		Year:          fee.Year,
		Status:        fee.Status,
		PaidAmount:    fee.PaidAmount,
		PaidAt:        fee.PaidAt,
		PaymentMethod: fee.PaymentMethod,
		TransactionID: fee.TransactionID,
		DueDate:       fee.DueDate,
		Remarks:       fee.Remarks,
		CreatedAt:     fee.CreatedAt,
	}
}

// GetFees godoc
// @Summary Danh sách khoản phí, sinh viên chỉ thấy của mình
// @Tags fees
// @Security BearerAuth
// @Param status query string false "Lọc theo trạng thái"
// @Param month query string false "Lọc theo tháng"
// @Param year query int false "Lọc theo năm"
// @Param studentId query int false "Lọc theo sinh viên (admin)"
// @Param page query int false "Trang"
// @Param limit query int false "Số item mỗi trang"
// @Success 200 {object} response.Response
// @Router /api/fees [get]
func GetFees(c *gin.Context) {
	userID, role := middlewareUser(c)

	query := config.DB.Model(&models.Fee{})
	if role == constants.RoleStudent {
		query = query.Where("student_id = ?", userID)
	} else if sid := c.Query("studentId"); sid != "" {
		query = query.Where("student_id = ?", sid)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Error counting fees: %v", err)
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var fees []models.Fee
	err := query.Preload("Student").
		Order("due_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&fees).Error
	if err != nil {
		log.Printf("Error retrieving fees: %v", err)
		response.ServerError(c)
		return
	}

	results := make([]dto.FeeResponse, 0, len(fees))
	for i := range fees {
		results = append(results, toFeeResponse(&fees[i]))
	}

	response.SuccessWithPagination(c, results, total, page, limit)
}

// CreateFee godoc
// @Summary Tạo khoản phí cho một sinh viên
// @Tags fees
// @Security BearerAuth
// @Param body body dto.FeeRequest true "Fee"
// @Success 201 {object} response.Response
// @Router /api/fees [post]
func CreateFee(c *gin.Context) {
	var req dto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var student models.User
	err := config.DB.Where("role = ?", constants.RoleStudent).First(&student, req.StudentID).Error
	if err != nil {
		response.NotFound(c, "Student not found")
		return
	}

	fee := models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Month:     req.Month,
		Year:      req.Year,
		Status:    constants.FeeStatusUnpaid,
		DueDate:   req.DueDate,
		Remarks:   req.Remarks,
	}

	if err := validator.ValidateFee(&fee); err != nil {
		handleServiceError(c, err)
		return
	}

	var existing int64
	config.DB.Model(&models.Fee{}).
		Where("student_id = ? AND month = ? AND year = ?", req.StudentID, req.Month, req.Year).
		Count(&existing)
	if existing > 0 {
		response.BadRequest(c, "Fee already exists for this student and month")
		return
	}

	if err := config.DB.Create(&fee).Error; err != nil {
		log.Printf("Error creating fee: %v", err)
		response.ServerError(c)
		return
	}

	fee.Student = student
	response.CreatedWithMessage(c, toFeeResponse(&fee), "Fee created successfully")
}

// BulkCreateFees godoc
// @Summary Tạo phí theo tháng cho tất cả sinh viên đang hoạt động
// @Tags fees
// @Security BearerAuth
// @Param body body dto.BulkFeeRequest true "Fee"
// @Success 201 {object} response.Response
// @Router /api/fees/bulk [post]
func BulkCreateFees(c *gin.Context) {
	var req dto.BulkFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	fees, err := services.BulkCreateFees(c.Request.Context(), config.DB, req.Amount, req.Month, req.Year, req.DueDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.CreatedWithMessage(c, gin.H{"created": len(fees)}, "Fees created for all active students")
}

// PayFee godoc
// @Summary Ghi nhận thanh toán, trạng thái chuyển paid hoặc partial
// @Tags fees
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param body body dto.FeePaymentRequest true "Payment"
// @Success 200 {object} response.Response
// @Router /api/fees/{id}/pay [post]
func PayFee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FeePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "paidAmount is required and must be positive")
		return
	}

	var fee models.Fee
	if err := config.DB.Preload("Student").First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Fee not found")
			return
		}
		response.ServerError(c)
		return
	}

	if fee.Status == constants.FeeStatusPaid {
		response.BadRequest(c, "Fee is already paid")
		return
	}
	if fee.PaidAmount+req.PaidAmount > fee.Amount {
		response.BadRequest(c, "Payment exceeds the remaining amount")
		return
	}

	fee.PaidAmount += req.PaidAmount
	fee.PaymentMethod = req.PaymentMethod
	fee.TransactionID = req.TransactionID
	now := time.Now()
	fee.PaidAt = &now
	if fee.PaidAmount >= fee.Amount {
		fee.Status = constants.FeeStatusPaid
	} else {
		fee.Status = constants.FeeStatusPartial
	}

	if err := config.DB.Save(&fee).Error; err != nil {
		log.Printf("Error recording payment: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, toFeeResponse(&fee), "Payment recorded successfully")
}

// UpdateFee godoc
// @Summary Admin cập nhật khoản phí
// @Tags fees
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param body body dto.FeeUpdateRequest true "Fields"
// @Success 200 {object} response.Response
// @Router /api/fees/{id} [put]
func UpdateFee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var fee models.Fee
	if err := config.DB.Preload("Student").First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Fee not found")
			return
		}
		response.ServerError(c)
		return
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			response.BadRequest(c, "Amount must be positive")
			return
		}
		fee.Amount = *req.Amount
	}
	if req.Status != nil {
		switch *req.Status {
		case constants.FeeStatusPaid, constants.FeeStatusUnpaid,
			constants.FeeStatusPartial, constants.FeeStatusOverdue:
		default:
			response.BadRequest(c, "Invalid fee status")
			return
		}
		fee.Status = *req.Status
	}
	if req.DueDate != nil {
		fee.DueDate = *req.DueDate
	}
	if req.Remarks != nil {
		fee.Remarks = *req.Remarks
	}

	if err := config.DB.Save(&fee).Error; err != nil {
		log.Printf("Error updating fee: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, toFeeResponse(&fee), "Fee updated successfully")
}

// DeleteFee godoc
// @Summary Xóa khoản phí
// @Tags fees
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} response.Response
// @Router /api/fees/{id} [delete]
func DeleteFee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Fee{}, id)
	if result.Error != nil {
		log.Printf("Error deleting fee: %v", result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Fee not found")
		return
	}

	response.SuccessMessage(c, "Fee deleted successfully")
}
