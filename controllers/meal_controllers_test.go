package controllers

import (
	"encoding/json"
	"net/http"
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
	"hostelhub/validator"
)

func setupMealRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	validator.RegisterBindingRules()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))

	config.DB = db
	config.RedisClient = nil

	router := gin.New()
	meals := router.Group("/api/meals", middleware.AuthMiddleware())
	meals.GET("", GetMeals)
	meals.POST("", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), UpsertMeal)
	return router
}

func TestUpsertMealIdempotentPerDayAndWeek(t *testing.T) {
	router := setupMealRouter(t)
	token := seedAdmin(t)

	body := gin.H{"day": "Monday", "breakfast": "Pho", "lunch": "Com tam"}
	w := doJSON(router, http.MethodPost, "/api/meals", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// POST lần hai cùng (day, weekLabel) cập nhật row cũ thay vì tạo mới
	body = gin.H{"day": "monday", "lunch": "Bun cha", "dinner": "Com ga"}
	w = doJSON(router, http.MethodPost, "/api/meals", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, config.DB.Model(&models.Meal{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var meal models.Meal
	require.NoError(t, config.DB.First(&meal).Error)
	assert.Equal(t, "Monday", meal.Day)
	assert.Equal(t, "Current Week", meal.WeekLabel)
	// field không gửi giữ nguyên, field gửi lại bị ghi đè
	assert.Equal(t, "Pho", meal.Breakfast)
	assert.Equal(t, "Bun cha", meal.Lunch)
	assert.Equal(t, "Com ga", meal.Dinner)
}

func TestUpsertMealSeparateWeeks(t *testing.T) {
	router := setupMealRouter(t)
	token := seedAdmin(t)

	w := doJSON(router, http.MethodPost, "/api/meals", token,
		gin.H{"day": "Monday", "lunch": "Com tam"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/meals", token,
		gin.H{"day": "Monday", "lunch": "Bun bo", "weekLabel": "Next Week"})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Meal{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpsertMealRejectsInvalidDay(t *testing.T) {
	router := setupMealRouter(t)
	token := seedAdmin(t)

	w := doJSON(router, http.MethodPost, "/api/meals", token,
		gin.H{"day": "Someday", "lunch": "Com tam"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMealsOrderedByWeekday(t *testing.T) {
	router := setupMealRouter(t)
	token := seedAdmin(t)

	for _, day := range []string{"Friday", "Monday", "Wednesday"} {
		w := doJSON(router, http.MethodPost, "/api/meals", token,
			gin.H{"day": day, "lunch": "Com"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/meals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp.Data.([]interface{})
	require.Len(t, items, 3)

	days := make([]string, 0, len(items))
	for _, item := range items {
		days = append(days, item.(map[string]interface{})["day"].(string))
	}
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, days)
}
