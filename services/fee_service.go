package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostelhub/constants"
	"hostelhub/models"
)

// BulkCreateFees tạo một khoản phí chưa thanh toán cho mọi sinh viên đang
// hoạt động, trả về danh sách đã tạo.
func BulkCreateFees(ctx context.Context, db *gorm.DB, amount float64, month string, year int, dueDate time.Time) ([]models.Fee, error) {
	var students []models.User
	err := db.WithContext(ctx).
		Where("role = ? AND is_active = ?", constants.RoleStudent, true).
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	fees := make([]models.Fee, 0, len(students))
	for _, student := range students {
		fees = append(fees, models.Fee{
			StudentID: student.ID,
			Amount:    amount,
			Month:     month,
			Year:      year,
			DueDate:   dueDate,
			Status:    constants.FeeStatusUnpaid,
		})
	}

	if len(fees) == 0 {
		return fees, nil
	}

	if err := db.WithContext(ctx).Create(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

// MarkOverdueFees chuyển các khoản unpaid/partial đã quá hạn sang overdue,
// trả về số dòng bị ảnh hưởng.
func MarkOverdueFees(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Model(&models.Fee{}).
		Where("status IN ? AND due_date < ?", []string{constants.FeeStatusUnpaid, constants.FeeStatusPartial}, now).
		Update("status", constants.FeeStatusOverdue)
	return res.RowsAffected, res.Error
}
