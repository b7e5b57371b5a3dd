package controllers

import (
	"log"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/validator"
)

func dayIndex(day string) int {
	for i, d := range constants.Days {
		if strings.EqualFold(d, day) {
			return i
		}
	}
	return len(constants.Days)
}

// canonicalDay đưa tên ngày về đúng dạng trong constants.Days
func canonicalDay(day string) string {
	for _, d := range constants.Days {
		if strings.EqualFold(d, day) {
			return d
		}
	}
	return day
}

func toMealResponse(meal *models.Meal) dto.MealResponse {
	return dto.MealResponse{
		ID:        meal.ID,
		Day:       meal.Day,
		Breakfast: meal.Breakfast,
		Lunch:     meal.Lunch,
		Dinner:    meal.Dinner,
		Snacks:    meal.Snacks,
		WeekLabel: meal.WeekLabel,
		UpdatedBy: toUserSummary(meal.CreatedBy),
	}
}

// upsertMeal ghi đè thực đơn theo cặp (day, weekLabel)
func upsertMeal(req *dto.MealRequest, userID uint) (*models.Meal, error) {
	weekLabel := req.WeekLabel
	if weekLabel == "" {
		weekLabel = "Current Week"
	}

	meal := models.Meal{
		Day:       canonicalDay(req.Day),
		WeekLabel: weekLabel,
	}
	if err := validator.ValidateMeal(&meal); err != nil {
		return nil, err
	}

	var existing models.Meal
	err := config.DB.Where("day = ? AND week_label = ?", meal.Day, weekLabel).First(&existing).Error
	if err == nil {
		meal = existing
	}

	if req.Breakfast != "" {
		meal.Breakfast = req.Breakfast
	}
	if req.Lunch != "" {
		meal.Lunch = req.Lunch
	}
	if req.Dinner != "" {
		meal.Dinner = req.Dinner
	}
	if req.Snacks != "" {
		meal.Snacks = req.Snacks
	}
	meal.CreatedByID = &userID

	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetMeals godoc
// @Summary Thực đơn tuần, sắp theo thứ tự ngày trong tuần
// @Tags meals
// @Security BearerAuth
// @Param weekLabel query string false "Nhãn tuần, mặc định Current Week"
// @Success 200 {object} response.Response
// @Router /api/meals [get]
func GetMeals(c *gin.Context) {
	week := c.DefaultQuery("weekLabel", "Current Week")

	var meals []models.Meal
	err := config.DB.Preload("CreatedBy").Where("week_label = ?", week).Find(&meals).Error
	if err != nil {
		log.Printf("Error retrieving meals: %v", err)
		response.ServerError(c)
		return
	}

	sort.Slice(meals, func(i, j int) bool {
		return dayIndex(meals[i].Day) < dayIndex(meals[j].Day)
	})

	results := make([]dto.MealResponse, 0, len(meals))
	for i := range meals {
		results = append(results, toMealResponse(&meals[i]))
	}
	response.Success(c, results)
}

// UpsertMeal godoc
// @Summary Tạo hoặc cập nhật thực đơn một ngày
// @Tags meals
// @Security BearerAuth
// @Param body body dto.MealRequest true "Meal"
// @Success 200 {object} response.Response
// @Router /api/meals [post]
func UpsertMeal(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var req dto.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	meal, err := upsertMeal(&req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, toMealResponse(meal), "Meal plan saved")
}

// BulkUpsertMeals godoc
// @Summary Cập nhật thực đơn cả tuần trong một request
// @Tags meals
// @Security BearerAuth
// @Param body body dto.BulkMealRequest true "Meals"
// @Success 200 {object} response.Response
// @Router /api/meals/bulk [post]
func BulkUpsertMeals(c *gin.Context) {
	userID, _ := middlewareUser(c)

	var req dto.BulkMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	results := make([]dto.MealResponse, 0, len(req.Meals))
	for i := range req.Meals {
		meal, err := upsertMeal(&req.Meals[i], userID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		results = append(results, toMealResponse(meal))
	}

	response.SuccessWithMessage(c, results, "Meal plans saved")
}

// DeleteMeal godoc
// @Summary Xóa thực đơn một ngày
// @Tags meals
// @Security BearerAuth
// @Param id path int true "Meal ID"
// @Success 200 {object} response.Response
// @Router /api/meals/{id} [delete]
func DeleteMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Meal{}, id)
	if result.Error != nil {
		log.Printf("Error deleting meal: %v", result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Meal not found")
		return
	}

	response.SuccessMessage(c, "Meal deleted successfully")
}
