package dto

// MealRequest upsert thực đơn theo ngày
type MealRequest struct {
	Day       string `json:"day" binding:"required,weekday"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
	WeekLabel string `json:"weekLabel"`
}

// BulkMealRequest upsert toàn bộ tuần trong một request
type BulkMealRequest struct {
	Meals []MealRequest `json:"meals" binding:"required,min=1,dive"`
}

// MealResponse là DTO cho thực đơn trong response
type MealResponse struct {
	ID        uint         `json:"id"`
	Day       string       `json:"day"`
	Breakfast string       `json:"breakfast"`
	Lunch     string       `json:"lunch"`
	Dinner    string       `json:"dinner"`
	Snacks    string       `json:"snacks"`
	WeekLabel string       `json:"weekLabel"`
	UpdatedBy *UserSummary `json:"updatedBy,omitempty"`
}
