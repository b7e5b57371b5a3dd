package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services/notification"
	"hostelhub/validator"
)

type NotificationController struct {
	melody *melody.Melody
}

func NewNotificationController(m *melody.Melody) *NotificationController {
	return &NotificationController{melody: m}
}

func toNotificationResponse(n *models.Notification, userID uint) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		Broadcast:  n.Broadcast,
		TargetRole: n.TargetRole,
		IsRead:     n.IsReadBy(userID),
		CreatedBy:  toUserSummary(&n.CreatedBy),
		CreatedAt:  n.CreatedAt,
	}
}

// notificationsFor lọc thông báo gửi đến user, mới nhất trước.
// Lọc trong bộ nhớ vì recipients là mảng, tránh SQL riêng cho từng dialect.
func notificationsFor(userID uint, role string) ([]models.Notification, error) {
	var all []models.Notification
	err := config.DB.Preload("CreatedBy").Order("created_at DESC").Find(&all).Error
	if err != nil {
		return nil, err
	}

	targeted := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if role == constants.RoleAdmin || n.TargetsUser(userID, role) {
			targeted = append(targeted, n)
		}
	}
	return targeted, nil
}

// GetNotifications godoc
// @Summary Thông báo của người dùng hiện tại, isRead tính theo người đọc
// @Tags notifications
// @Security BearerAuth
// @Param unread query bool false "Chỉ thông báo chưa đọc"
// @Param page query int false "Trang"
// @Param limit query int false "Số item mỗi trang"
// @Success 200 {object} response.Response
// @Router /api/notifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID, role := middlewareUser(c)

	targeted, err := notificationsFor(userID, role)
	if err != nil {
		log.Printf("Error retrieving notifications: %v", err)
		response.ServerError(c)
		return
	}

	unreadOnly := c.Query("unread") == "true"
	results := make([]dto.NotificationResponse, 0, len(targeted))
	for i := range targeted {
		resp := toNotificationResponse(&targeted[i], userID)
		if unreadOnly && resp.IsRead {
			continue
		}
		results = append(results, resp)
	}

	page, limit := parsePagination(c)
	total := int64(len(results))
	start := (page - 1) * limit
	if start >= len(results) {
		response.SuccessWithPagination(c, []dto.NotificationResponse{}, total, page, limit)
		return
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}

	response.SuccessWithPagination(c, results[start:end], total, page, limit)
}

// CreateNotification godoc
// @Summary Tạo thông báo và đẩy qua websocket
// @Tags notifications
// @Security BearerAuth
// @Param body body dto.NotificationRequest true "Notification"
// @Success 201 {object} response.Response
// @Router /api/notifications [post]
func (ctrl *NotificationController) CreateNotification(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if !req.Broadcast && len(req.Recipients) == 0 {
		response.BadRequest(c, "Notification needs recipients or broadcast")
		return
	}

	n := models.Notification{
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Broadcast:   req.Broadcast,
		TargetRole:  req.TargetRole,
		Recipients:  req.Recipients,
		CreatedByID: userID,
	}
	if n.Type == "" {
		n.Type = constants.NotificationInfo
	}
	if n.TargetRole == "" {
		n.TargetRole = "all"
	}

	if err := validator.ValidateNotification(&n); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Create(&n).Error; err != nil {
		log.Printf("Error creating notification: %v", err)
		response.ServerError(c)
		return
	}
	config.DB.Preload("CreatedBy").First(&n, n.ID)

	if ctrl.melody != nil && n.Broadcast {
		svc := notification.NewMelodyService(ctrl.melody)
		if err := svc.SendMessage(notification.BuildPayload(&n)); err != nil {
			log.Printf("Lỗi khi broadcast thông báo: %v", err)
		}
	}

	response.CreatedWithMessage(c, toNotificationResponse(&n, userID), "Notification sent")
}

// MarkRead godoc
// @Summary Đánh dấu một thông báo đã đọc
// @Tags notifications
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Router /api/notifications/{id}/read [put]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := middlewareUser(c)

	var n models.Notification
	if err := config.DB.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Notification not found")
			return
		}
		response.ServerError(c)
		return
	}

	if role != constants.RoleAdmin && !n.TargetsUser(userID, role) {
		response.Forbidden(c)
		return
	}

	if !n.IsReadBy(userID) {
		n.ReadBy = append(n.ReadBy, int64(userID))
		if err := config.DB.Model(&n).Update("read_by", n.ReadBy).Error; err != nil {
			log.Printf("Error marking notification read: %v", err)
			response.ServerError(c)
			return
		}
	}

	response.SuccessMessage(c, "Notification marked as read")
}

// MarkAllRead godoc
// @Summary Đánh dấu tất cả thông báo đã đọc
// @Tags notifications
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/notifications/read-all [put]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	userID, role := middlewareUser(c)

	targeted, err := notificationsFor(userID, role)
	if err != nil {
		log.Printf("Error retrieving notifications: %v", err)
		response.ServerError(c)
		return
	}

	var updated int64
	for i := range targeted {
		n := &targeted[i]
		if n.IsReadBy(userID) {
			continue
		}
		n.ReadBy = append(n.ReadBy, int64(userID))
		if err := config.DB.Model(n).Update("read_by", n.ReadBy).Error; err != nil {
			log.Printf("Error marking notification read: %v", err)
			response.ServerError(c)
			return
		}
		updated++
	}

	response.SuccessWithCount(c, updated)
}

// UnreadCount godoc
// @Summary Số thông báo chưa đọc của người dùng hiện tại
// @Tags notifications
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/notifications/unread-count [get]
func (ctrl *NotificationController) UnreadCount(c *gin.Context) {
	userID, role := middlewareUser(c)

	targeted, err := notificationsFor(userID, role)
	if err != nil {
		log.Printf("Error counting notifications: %v", err)
		response.ServerError(c)
		return
	}

	var count int64
	for i := range targeted {
		if !targeted[i].IsReadBy(userID) {
			count++
		}
	}

	response.SuccessWithCount(c, count)
}

// DeleteNotification godoc
// @Summary Xóa thông báo
// @Tags notifications
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Router /api/notifications/{id} [delete]
func (ctrl *NotificationController) DeleteNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Notification{}, id)
	if result.Error != nil {
		log.Printf("Error deleting notification: %v", result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Notification not found")
		return
	}

	response.SuccessMessage(c, "Notification deleted successfully")
}
