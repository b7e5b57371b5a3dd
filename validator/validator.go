package validator

import (
	"fmt"
	"regexp"

	"hostelhub/constants"
	"hostelhub/errors"
	"hostelhub/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Please provide a name", nil)
	}
	if len(user.Name) > 50 {
		return errors.NewAppError(errors.ErrCodeValidation, "Name cannot exceed 50 characters", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Please provide an email", nil)
	}
	if !emailRegex.MatchString(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Please provide a valid email", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Please provide a password", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if len(user.Phone) > 15 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phone number cannot exceed 15 characters", nil)
	}

	switch user.Role {
	case constants.RoleAdmin, constants.RoleWarden, constants.RoleStudent:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidRole, fmt.Sprintf("Invalid role: %s", user.Role), nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}
	if room.Block == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Block name is required", nil)
	}

	if room.Floor < 0 || room.Floor > 20 {
		return errors.NewAppError(errors.ErrCodeValidation, "Floor must be between 0 and 20", nil)
	}

	if room.Capacity < 1 || room.Capacity > 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Capacity must be between 1 and 6", nil)
	}

	if room.PricePerMonth < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price per month cannot be negative", nil)
	}

	if err := room.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	return nil
}

// ValidateComplaint validate khiếu nại
func ValidateComplaint(complaint *models.Complaint) error {
	if complaint.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Complaint title is required", nil)
	}
	if len(complaint.Title) > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Title cannot exceed 100 characters", nil)
	}

	if complaint.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Description is required", nil)
	}
	if len(complaint.Description) > 1000 {
		return errors.NewAppError(errors.ErrCodeValidation, "Description cannot exceed 1000 characters", nil)
	}

	if !contains(constants.ComplaintCategories, complaint.Category) {
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("Invalid category: %s", complaint.Category), nil)
	}

	return nil
}

// ValidateFee validate khoản phí
func ValidateFee(fee *models.Fee) error {
	if fee.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Fee amount cannot be negative", nil)
	}

	if !contains(constants.Months, fee.Month) {
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("Invalid month: %s", fee.Month), nil)
	}

	if fee.Year == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Year is required", nil)
	}

	if fee.DueDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Due date is required", nil)
	}

	return nil
}

// ValidateMeal validate lịch ăn
func ValidateMeal(meal *models.Meal) error {
	if !contains(constants.Days, meal.Day) {
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("Invalid day: %s", meal.Day), nil)
	}
	return nil
}

// ValidateNotification validate thông báo
func ValidateNotification(n *models.Notification) error {
	if n.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Notification title is required", nil)
	}
	if len(n.Title) > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Title cannot exceed 100 characters", nil)
	}

	if n.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Message is required", nil)
	}
	if len(n.Message) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Message cannot exceed 500 characters", nil)
	}

	return nil
}
