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
	"hostelhub/services"
	"hostelhub/validator"
)

func toAuthUser(user *models.User) dto.AuthUser {
	return dto.AuthUser{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
	}
}

// Register godoc
// @Summary Đăng ký tài khoản
// @Tags auth
// @Param body body dto.RegisterRequest true "User"
// @Success 201 {object} response.Response
// @Router /api/auth/register [post]
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = constants.RoleStudent
	}

	user := models.User{
		Name:        req.Name,
		Email:       services.NormalizeEmail(req.Email),
		Role:        role,
		Phone:       req.Phone,
		Department:  req.Department,
		Year:        req.Year,
		ParentName:  req.ParentName,
		ParentPhone: req.ParentPhone,
		Address:     req.Address,
		IsActive:    true,
	}
	if req.StudentID != "" {
		sid := req.StudentID
		user.StudentID = &sid
	}

	// validate trên mật khẩu thô, hash sau khi hợp lệ
	user.Password = req.Password
	if err := validator.ValidateUser(&user); err != nil {
		handleServiceError(c, err)
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		response.ServerError(c)
		return
	}
	user.Password = hashed

	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.BadRequest(c, "Email or student ID already registered")
			return
		}
		log.Printf("Error creating user: %v", err)
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(&user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		response.ServerError(c)
		return
	}

	response.CreatedWithMessage(c, dto.LoginResponse{Token: token, User: toAuthUser(&user)}, "Registered successfully")
}

// Login godoc
// @Summary Đăng nhập
// @Tags auth
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Router /api/auth/login [post]
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", services.NormalizeEmail(req.Email)).First(&user).Error; err != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	if !services.CheckPassword(user.Password, req.Password) {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	if !user.IsActive {
		response.Unauthorized(c, "Account is deactivated")
		return
	}

	token, err := services.GenerateToken(&user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, dto.LoginResponse{Token: token, User: toAuthUser(&user)}, "Logged in successfully")
}

// GetMe godoc
// @Summary Hồ sơ người dùng hiện tại
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/auth/me [get]
func GetMe(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var user models.User
	if err := config.DB.Preload("Room").First(&user, userID).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, toUserResponse(&user))
}

// UpdateProfile godoc
// @Summary Người dùng tự cập nhật hồ sơ
// @Tags auth
// @Security BearerAuth
// @Param body body dto.UpdateProfileRequest true "Fields"
// @Success 200 {object} response.Response
// @Router /api/auth/update-profile [put]
func UpdateProfile(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ParentName != nil {
		user.ParentName = *req.ParentName
	}
	if req.ParentPhone != nil {
		user.ParentPhone = *req.ParentPhone
	}

	if err := validator.ValidateUser(&user); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, toUserResponse(&user), "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Đổi mật khẩu
// @Tags auth
// @Security BearerAuth
// @Param body body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.Response
// @Router /api/auth/change-password [put]
func ChangePassword(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Current and new passwords are required")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	if !services.CheckPassword(user.Password, req.CurrentPassword) {
		response.BadRequest(c, "Current password is incorrect")
		return
	}

	hashed, err := services.HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		log.Printf("Error changing password: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessMessage(c, "Password changed successfully")
}

// GetUsers godoc
// @Summary Danh sách tài khoản mọi vai trò
// @Tags auth
// @Security BearerAuth
// @Param role query string false "Lọc theo vai trò"
// @Param search query string false "Tìm theo tên hoặc email"
// @Param page query int false "Trang"
// @Param limit query int false "Số item mỗi trang"
// @Success 200 {object} response.Response
// @Router /api/auth/users [get]
func GetUsers(c *gin.Context) {
	query := config.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Error counting users: %v", err)
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var users []models.User
	err := query.Preload("Room").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		log.Printf("Error retrieving users: %v", err)
		response.ServerError(c)
		return
	}

	results := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		results = append(results, toUserResponse(&users[i]))
	}

	response.SuccessWithPagination(c, results, total, page, limit)
}

// DeleteUser godoc
// @Summary Xóa tài khoản
// @Tags auth
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Router /api/auth/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, _ := middlewareUser(c)
	if id == callerID {
		response.BadRequest(c, "You cannot delete your own account")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ServerError(c)
		return
	}

	if user.RoomID != nil {
		response.BadRequest(c, "Student is allocated to a room. Deallocate first.")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessMessage(c, "User deleted successfully")
}

// ToggleUserStatus godoc
// @Summary Đảo trạng thái hoạt động của tài khoản
// @Tags auth
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Router /api/auth/users/{id}/toggle-status [put]
func ToggleUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, _ := middlewareUser(c)
	if id == callerID {
		response.BadRequest(c, "You cannot deactivate your own account")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ServerError(c)
		return
	}

	user.IsActive = !user.IsActive
	if err := config.DB.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		log.Printf("Error toggling user status: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, toUserResponse(&user), "User status updated")
}
