package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostelhub/constants"
	"hostelhub/models"
)

func newFeeTestDB(t *testing.T) *gorm.DB {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Fee{}))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, email string, active bool) *models.User {
	student := &models.User{
		Name:     "Student",
		Email:    email,
		Password: "hashed",
		Role:     constants.RoleStudent,
		IsActive: active,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func TestBulkCreateFeesOnlyActiveStudents(t *testing.T) {
	db := newFeeTestDB(t)

	active := seedStudent(t, db, "active@example.com", true)
	seedStudent(t, db, "inactive@example.com", false)

	warden := &models.User{
		Name:     "Warden",
		Email:    "warden@example.com",
		Password: "hashed",
		Role:     constants.RoleWarden,
		IsActive: true,
	}
	require.NoError(t, db.Create(warden).Error)

	due := time.Now().AddDate(0, 1, 0)
	fees, err := BulkCreateFees(context.Background(), db, 1500, "January", 2026, due)
	require.NoError(t, err)
	require.Len(t, fees, 1)

	assert.Equal(t, active.ID, fees[0].StudentID)
	assert.Equal(t, constants.FeeStatusUnpaid, fees[0].Status)
	assert.Equal(t, 1500.0, fees[0].Amount)
}

func TestBulkCreateFeesNoStudents(t *testing.T) {
	db := newFeeTestDB(t)

	fees, err := BulkCreateFees(context.Background(), db, 1500, "January", 2026, time.Now())
	require.NoError(t, err)
	assert.Empty(t, fees)
}

func TestMarkOverdueFees(t *testing.T) {
	db := newFeeTestDB(t)
	student := seedStudent(t, db, "a@example.com", true)

	now := time.Now()
	fees := []models.Fee{
		{StudentID: student.ID, Amount: 1000, Month: "January", Year: 2026, Status: constants.FeeStatusUnpaid, DueDate: now.AddDate(0, 0, -5)},
		{StudentID: student.ID, Amount: 1000, Month: "February", Year: 2026, Status: constants.FeeStatusPartial, PaidAmount: 300, DueDate: now.AddDate(0, 0, -1)},
		{StudentID: student.ID, Amount: 1000, Month: "March", Year: 2026, Status: constants.FeeStatusUnpaid, DueDate: now.AddDate(0, 0, 10)},
		{StudentID: student.ID, Amount: 1000, Month: "April", Year: 2026, Status: constants.FeeStatusPaid, PaidAmount: 1000, DueDate: now.AddDate(0, 0, -10)},
	}
	require.NoError(t, db.Create(&fees).Error)

	count, err := MarkOverdueFees(context.Background(), db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var overdue int64
	db.Model(&models.Fee{}).Where("status = ?", constants.FeeStatusOverdue).Count(&overdue)
	assert.Equal(t, int64(2), overdue)

	// phí đã trả và chưa đến hạn không bị đụng tới
	var paid models.Fee
	require.NoError(t, db.Where("month = ?", "April").First(&paid).Error)
	assert.Equal(t, constants.FeeStatusPaid, paid.Status)
}

func TestMarkOverdueFeesIdempotent(t *testing.T) {
	db := newFeeTestDB(t)
	student := seedStudent(t, db, "a@example.com", true)

	fee := models.Fee{StudentID: student.ID, Amount: 1000, Month: "January", Year: 2026, Status: constants.FeeStatusUnpaid, DueDate: time.Now().AddDate(0, 0, -5)}
	require.NoError(t, db.Create(&fee).Error)

	count, err := MarkOverdueFees(context.Background(), db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = MarkOverdueFees(context.Background(), db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
