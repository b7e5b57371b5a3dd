package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
)

// GetStudents godoc
// @Summary Danh sách sinh viên kèm phòng
// @Tags students
// @Security BearerAuth
// @Param search query string false "Tìm theo tên, email hoặc mã sinh viên"
// @Param block query string false "Lọc theo block"
// @Param unallocated query bool false "Chỉ sinh viên chưa có phòng"
// @Param page query int false "Trang"
// @Param limit query int false "Số item mỗi trang"
// @Success 200 {object} response.Response
// @Router /api/students [get]
func GetStudents(c *gin.Context) {
	query := config.DB.Model(&models.User{}).Where("role = ?", constants.RoleStudent)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(student_id) LIKE ?",
			like, like, like,
		)
	}
	if block := c.Query("block"); block != "" {
		query = query.Where("block = ?", strings.ToUpper(block))
	}
	if c.Query("unallocated") == "true" {
		query = query.Where("room_id IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Error counting students: %v", err)
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var students []models.User
	err := query.Preload("Room").
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&students).Error
	if err != nil {
		log.Printf("Error retrieving students: %v", err)
		response.ServerError(c)
		return
	}

	results := make([]dto.UserResponse, 0, len(students))
	for i := range students {
		results = append(results, toUserResponse(&students[i]))
	}

	response.SuccessWithPagination(c, results, total, page, limit)
}

// GetStudentDetail godoc
// @Summary Chi tiết sinh viên
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Response
// @Router /api/students/{id} [get]
func GetStudentDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var student models.User
	err := config.DB.Preload("Room").
		Where("role = ?", constants.RoleStudent).
		First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&student))
}

// UpdateStudent godoc
// @Summary Cập nhật hồ sơ sinh viên (partial)
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param body body dto.StudentUpdateRequest true "Fields"
// @Success 200 {object} response.Response
// @Router /api/students/{id} [put]
func UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var student models.User
	err := config.DB.Where("role = ?", constants.RoleStudent).First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.StudentID != nil {
		if *req.StudentID == "" {
			student.StudentID = nil
		} else {
			student.StudentID = req.StudentID
		}
	}
	if req.Department != nil {
		student.Department = *req.Department
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.BadRequest(c, "Student ID already in use")
			return
		}
		log.Printf("Error updating student: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, toUserResponse(&student), "Student updated successfully")
}

// DeleteStudent godoc
// @Summary Xóa sinh viên, từ chối khi còn ở trong phòng
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Response
// @Router /api/students/{id} [delete]
func DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var student models.User
	err := config.DB.Where("role = ?", constants.RoleStudent).First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.ServerError(c)
		return
	}

	if student.RoomID != nil {
		response.BadRequest(c, "Student is allocated to a room. Deallocate first.")
		return
	}

	if err := config.DB.Delete(&student).Error; err != nil {
		log.Printf("Error deleting student: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessMessage(c, "Student deleted successfully")
}
