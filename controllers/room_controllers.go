package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostelhub/config"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"
	"hostelhub/validator"
)

var roomCacheKey = "rooms:all"

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:               room.ID,
		RoomNumber:       room.RoomNumber,
		Block:            room.Block,
		Floor:            room.Floor,
		Type:             room.Type,
		Capacity:         room.Capacity,
		CurrentOccupants: room.CurrentOccupants(),
		Status:           room.Status,
		Amenities:        room.Amenities,
		PricePerMonth:    room.PricePerMonth,
		CreatedAt:        room.CreatedAt,
		UpdatedAt:        room.UpdatedAt,
	}
}

// loadAllRooms lấy toàn bộ danh sách phòng, ưu tiên cache Redis,
// lọc và phân trang làm sau trên bản trong bộ nhớ
func loadAllRooms() ([]dto.RoomResponse, error) {
	var allRooms []dto.RoomResponse

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomCacheKey, &allRooms); err == nil && len(allRooms) > 0 {
			return allRooms, nil
		}
	}

	var rooms []models.Room
	if err := config.DB.Preload("Occupants").Order("block, floor, room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	for i := range rooms {
		allRooms = append(allRooms, toRoomResponse(&rooms[i]))
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, roomCacheKey, allRooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}
	return allRooms, nil
}

func matchRoomFilters(c *gin.Context, room dto.RoomResponse) bool {
	if block := c.Query("block"); block != "" && !strings.EqualFold(room.Block, block) {
		return false
	}
	if floorStr := c.Query("floor"); floorStr != "" {
		floor, err := strconv.Atoi(floorStr)
		if err != nil || room.Floor != floor {
			return false
		}
	}
	if status := c.Query("status"); status != "" && room.Status != status {
		return false
	}
	if roomType := c.Query("type"); roomType != "" && room.Type != roomType {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		if !strings.Contains(strings.ToLower(room.RoomNumber), search) {
			return false
		}
	}
	return true
}

// GetRooms godoc
// @Summary Danh sách phòng
// @Tags rooms
// @Param block query string false "Lọc theo block"
// @Param floor query int false "Lọc theo tầng"
// @Param status query string false "Lọc theo trạng thái"
// @Param type query string false "Lọc theo loại phòng"
// @Param search query string false "Tìm theo số phòng"
// @Param page query int false "Trang"
// @Param limit query int false "Số item mỗi trang"
// @Success 200 {object} response.Response
// @Router /api/rooms [get]
func GetRooms(c *gin.Context) {
	allRooms, err := loadAllRooms()
	if err != nil {
		log.Printf("Error retrieving rooms: %v", err)
		response.ServerError(c)
		return
	}

	filtered := make([]dto.RoomResponse, 0, len(allRooms))
	for _, room := range allRooms {
		if matchRoomFilters(c, room) {
			filtered = append(filtered, room)
		}
	}

	page, limit := parsePagination(c)
	total := int64(len(filtered))
	start := (page - 1) * limit
	if start >= len(filtered) {
		response.SuccessWithPagination(c, []dto.RoomResponse{}, total, page, limit)
		return
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	response.SuccessWithPagination(c, filtered[start:end], total, page, limit)
}

// GetRoomDetail godoc
// @Summary Chi tiết phòng kèm danh sách người ở
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Router /api/rooms/{id} [get]
func GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.NewAllocationService(services.AllocationServiceOptions{DB: config.DB})
	room, err := svc.RoomWithOccupants(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	occupants := make([]dto.StudentSummary, 0, len(room.Occupants))
	for i := range room.Occupants {
		occupants = append(occupants, toStudentSummary(&room.Occupants[i]))
	}

	response.Success(c, dto.RoomDetail{
		RoomResponse: toRoomResponse(room),
		Description:  room.Description,
		IsAvailable:  room.IsAvailable(),
		Occupants:    occupants,
	})
}

// CreateRoom godoc
// @Summary Tạo phòng mới
// @Tags rooms
// @Param room body dto.RoomRequest true "Room"
// @Success 201 {object} response.Response
// @Router /api/rooms [post]
func CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	room := models.Room{
		RoomNumber:    strings.TrimSpace(req.RoomNumber),
		Block:         strings.ToUpper(strings.TrimSpace(req.Block)),
		Floor:         req.Floor,
		Type:          req.Type,
		Capacity:      req.Capacity,
		Status:        req.Status,
		Amenities:     req.Amenities,
		PricePerMonth: req.PricePerMonth,
		Description:   req.Description,
	}
	if room.Type == "" {
		room.Type = "double"
	}
	if room.Status == "" {
		room.Status = "available"
	}

	if err := validator.ValidateRoom(&room); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.BadRequest(c, "Room number already exists")
			return
		}
		log.Printf("Error creating room: %v", err)
		response.ServerError(c)
		return
	}

	invalidateCache(roomCacheKey)
	response.CreatedWithMessage(c, toRoomResponse(&room), "Room created successfully")
}

// UpdateRoom godoc
// @Summary Cập nhật phòng (partial)
// @Tags rooms
// @Param id path int true "Room ID"
// @Param room body dto.RoomUpdateRequest true "Fields"
// @Success 200 {object} response.Response
// @Router /api/rooms/{id} [put]
func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RoomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Preload("Occupants").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Room not found")
			return
		}
		response.ServerError(c)
		return
	}

	if req.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.Block != nil {
		room.Block = strings.ToUpper(strings.TrimSpace(*req.Block))
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Capacity != nil {
		if *req.Capacity < room.CurrentOccupants() {
			response.BadRequest(c, "Capacity cannot be less than current occupants")
			return
		}
		room.Capacity = *req.Capacity
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if req.PricePerMonth != nil {
		room.PricePerMonth = *req.PricePerMonth
	}
	if req.Description != nil {
		room.Description = *req.Description
	}

	if err := validator.ValidateRoom(&room); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.BadRequest(c, "Room number already exists")
			return
		}
		log.Printf("Error updating room: %v", err)
		response.ServerError(c)
		return
	}

	invalidateCache(roomCacheKey)
	response.SuccessWithMessage(c, toRoomResponse(&room), "Room updated successfully")
}

// DeleteRoom godoc
// @Summary Xóa phòng, từ chối khi còn người ở
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Router /api/rooms/{id} [delete]
func DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.NewAllocationService(services.AllocationServiceOptions{DB: config.DB})
	if err := svc.DeleteRoom(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateCache(roomCacheKey)
	response.SuccessMessage(c, "Room deleted successfully")
}

// AllocateRoom godoc
// @Summary Xếp sinh viên vào phòng
// @Tags rooms
// @Param id path int true "Room ID"
// @Param body body dto.AllocateRequest true "Student"
// @Success 200 {object} response.Response
// @Router /api/rooms/{id}/allocate [put]
func AllocateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "studentId is required")
		return
	}

	svc := services.NewAllocationService(services.AllocationServiceOptions{DB: config.DB})
	room, err := svc.Allocate(c.Request.Context(), id, req.StudentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateCache(roomCacheKey)
	response.SuccessWithMessage(c, toRoomResponse(room), "Student allocated successfully")
}

// DeallocateRoom godoc
// @Summary Rút sinh viên khỏi phòng
// @Tags rooms
// @Param id path int true "Room ID"
// @Param body body dto.AllocateRequest true "Student"
// @Success 200 {object} response.Response
// @Router /api/rooms/{id}/deallocate [put]
func DeallocateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "studentId is required")
		return
	}

	svc := services.NewAllocationService(services.AllocationServiceOptions{DB: config.DB})
	room, err := svc.Deallocate(c.Request.Context(), id, req.StudentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateCache(roomCacheKey)
	response.SuccessWithMessage(c, toRoomResponse(room), "Student removed from room")
}

// SuggestRooms godoc
// @Summary Gợi ý phòng theo từ khóa tìm kiếm
// @Tags rooms
// @Param q query string true "Từ khóa"
// @Param limit query int false "Số gợi ý tối đa"
// @Success 200 {object} response.Response
// @Router /api/rooms/suggest [get]
func SuggestRooms(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 20 {
		limit = 5
	}

	scored, err := services.SuggestRooms(c.Request.Context(), config.DB, query, limit)
	if err != nil {
		log.Printf("Error suggesting rooms: %v", err)
		response.ServerError(c)
		return
	}

	suggestions := make([]dto.RoomResponse, 0, len(scored))
	for i := range scored {
		suggestions = append(suggestions, toRoomResponse(&scored[i].Room))
	}
	response.Success(c, suggestions)
}
