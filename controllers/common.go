package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/config"
	"hostelhub/dto"
	apperrors "hostelhub/errors"
	"hostelhub/middleware"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"
)

// middlewareUser đọc identity do AuthMiddleware gắn vào context,
// trả về zero value trên route công khai
func middlewareUser(c *gin.Context) (uint, string) {
	return middleware.CurrentUser(c)
}

// handleServiceError map AppError code sang HTTP status, lỗi còn lại là 500
func handleServiceError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case apperrors.ErrCodeNotFound, apperrors.ErrCodeUserNotFound:
			response.NotFound(c, appErr.Message)
		case apperrors.ErrCodeConflict, apperrors.ErrCodeDuplicate, apperrors.ErrCodeValidation:
			response.BadRequest(c, appErr.Message)
		case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
			response.Unauthorized(c, appErr.Message)
		default:
			response.ServerError(c)
		}
		return
	}
	log.Printf("unexpected error: %v", err)
	response.ServerError(c)
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// invalidateCache xóa các cache key sau khi ghi, lỗi Redis chỉ log
func invalidateCache(keys ...string) {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, keys...); err != nil {
		log.Printf("Lỗi khi xóa cache: %v", err)
	}
}

func toStudentSummary(u *models.User) dto.StudentSummary {
	s := dto.StudentSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
	if u.StudentID != nil {
		s.StudentID = *u.StudentID
	}
	return s
}

func toUserSummary(u *models.User) *dto.UserSummary {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &dto.UserSummary{ID: u.ID, Name: u.Name, Role: u.Role}
}

func toUserResponse(u *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Avatar:     u.Avatar,
		Block:      u.Block,
		Department: u.Department,
		Year:       u.Year,
		IsActive:   u.IsActive,
		Room:       toRoomSummary(u.Room),
		CreatedAt:  u.CreatedAt,
	}
	if u.StudentID != nil {
		resp.StudentID = *u.StudentID
	}
	return resp
}

func toRoomSummary(r *models.Room) *dto.RoomSummary {
	if r == nil || r.ID == 0 {
		return nil
	}
	return &dto.RoomSummary{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Block:      r.Block,
		Floor:      r.Floor,
		Type:       r.Type,
	}
}
