package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/middleware"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"
	"hostelhub/validator"
)

// setupRoomRouter dựng router với sqlite in-memory thay cho Postgres,
// Redis để nil nên cache bị bỏ qua.
func setupRoomRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	validator.RegisterBindingRules()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.User{}))

	config.DB = db
	config.RedisClient = nil

	router := gin.New()
	rooms := router.Group("/api/rooms")
	rooms.GET("", middleware.AuthMiddleware(), GetRooms)
	rooms.GET("/:id", middleware.AuthMiddleware(), GetRoomDetail)
	rooms.POST("", middleware.AuthMiddleware(constants.RoleAdmin), CreateRoom)
	rooms.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), DeleteRoom)
	rooms.PUT("/:id/allocate", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), AllocateRoom)
	rooms.PUT("/:id/deallocate", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), DeallocateRoom)
	return router
}

func seedAdmin(t *testing.T) string {
	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "hashed",
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(admin).Error)

	token, err := services.GenerateToken(admin)
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetRoomsRequiresAuth(t *testing.T) {
	router := setupRoomRouter(t)

	w := doJSON(router, http.MethodGet, "/api/rooms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListRooms(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	body := gin.H{"roomNumber": "A-101", "block": "a", "floor": 1, "type": "double", "capacity": 2}
	w := doJSON(router, http.MethodPost, "/api/rooms", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)

	// block được chuẩn hóa thành chữ hoa
	data := created.Data.(map[string]interface{})
	assert.Equal(t, "A", data["block"])

	w = doJSON(router, http.MethodGet, "/api/rooms?block=A", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.True(t, listed.Success)
	require.NotNil(t, listed.Pagination)
	assert.Equal(t, int64(1), listed.Pagination.Total)
	assert.Equal(t, 1, listed.Pagination.Pages)
}

func TestGetRoomsSearchMatchesRoomNumberOnly(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	rooms := []models.Room{
		{RoomNumber: "A-101", Block: "B", Type: "double", Capacity: 2, Status: "available"},
		{RoomNumber: "X-999", Block: "A", Type: "double", Capacity: 2, Status: "available"},
	}
	require.NoError(t, config.DB.Create(&rooms).Error)

	// search chỉ khớp số phòng, không khớp block
	w := doJSON(router, http.MethodGet, "/api/rooms?search=a", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "A-101", items[0].(map[string]interface{})["roomNumber"])
}

func TestCreateRoomInvalidTypeRejected(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	body := gin.H{"roomNumber": "A-101", "block": "A", "capacity": 2, "type": "penthouse"}
	w := doJSON(router, http.MethodPost, "/api/rooms", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	body := gin.H{"roomNumber": "A-101", "block": "A", "capacity": 2}
	w := doJSON(router, http.MethodPost, "/api/rooms", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/rooms", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Room number already exists", resp.Message)
}

func TestCreateRoomInvalidCapacity(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	body := gin.H{"roomNumber": "A-101", "block": "A", "capacity": 9}
	w := doJSON(router, http.MethodPost, "/api/rooms", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAllocateEndpoint(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	room := &models.Room{RoomNumber: "B-201", Block: "B", Type: "single", Capacity: 1, Status: "available"}
	require.NoError(t, config.DB.Create(room).Error)

	student := &models.User{Name: "SV", Email: "sv@example.com", Password: "hashed", Role: constants.RoleStudent, IsActive: true}
	require.NoError(t, config.DB.Create(student).Error)

	w := doJSON(router, http.MethodPut, "/api/rooms/1/allocate", token, gin.H{"studentId": student.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "full", data["status"])
	assert.Equal(t, float64(1), data["currentOccupants"])

	// phòng 1 chỗ đã full, sinh viên thứ hai bị chặn
	second := &models.User{Name: "SV2", Email: "sv2@example.com", Password: "hashed", Role: constants.RoleStudent, IsActive: true}
	require.NoError(t, config.DB.Create(second).Error)

	w = doJSON(router, http.MethodPut, "/api/rooms/1/allocate", token, gin.H{"studentId": second.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// rút ra thì phòng mở lại
	w = doJSON(router, http.MethodPut, "/api/rooms/1/deallocate", token, gin.H{"studentId": student.ID})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, "available", data["status"])
}

func TestDeleteRoomWithOccupants(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	room := &models.Room{RoomNumber: "C-301", Block: "C", Type: "double", Capacity: 2, Status: "available"}
	require.NoError(t, config.DB.Create(room).Error)

	student := &models.User{Name: "SV", Email: "sv@example.com", Password: "hashed", Role: constants.RoleStudent, IsActive: true, RoomID: &room.ID}
	require.NoError(t, config.DB.Create(student).Error)

	w := doJSON(router, http.MethodDelete, "/api/rooms/1", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cannot delete a room with occupants. Remove all occupants first.", resp.Message)
}

func TestRoomNotFoundMapsTo404(t *testing.T) {
	router := setupRoomRouter(t)
	token := seedAdmin(t)

	w := doJSON(router, http.MethodGet, "/api/rooms/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/rooms/999/allocate", token, gin.H{"studentId": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
