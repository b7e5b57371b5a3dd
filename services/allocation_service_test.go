package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostelhub/constants"
	apperrors "hostelhub/errors"
	"hostelhub/models"
	"hostelhub/services/logger"
)

func newAllocationTestDB(t *testing.T) *gorm.DB {
	// mỗi test một database in-memory riêng, cache=shared để mọi
	// connection trong pool nhìn thấy cùng dữ liệu
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.User{}))
	return db
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, capacity int, status string) *models.Room {
	room := &models.Room{
		RoomNumber: number,
		Block:      "A",
		Floor:      1,
		Type:       constants.RoomTypeDouble,
		Capacity:   capacity,
		Status:     status,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func createTestStudent(t *testing.T, db *gorm.DB, email string) *models.User {
	student := &models.User{
		Name:     "Test Student",
		Email:    email,
		Password: "hashed",
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func TestAllocateSuccess(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-101", 2, constants.RoomStatusAvailable)
	student := createTestStudent(t, db, "a@example.com")

	result, err := svc.Allocate(context.Background(), room.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentOccupants())
	assert.Equal(t, constants.RoomStatusAvailable, result.Status)

	var updated models.User
	require.NoError(t, db.First(&updated, student.ID).Error)
	require.NotNil(t, updated.RoomID)
	assert.Equal(t, room.ID, *updated.RoomID)
	assert.Equal(t, "A", updated.Block)
}

func TestAllocateMarksRoomFullAtCapacity(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-102", 2, constants.RoomStatusAvailable)
	first := createTestStudent(t, db, "first@example.com")
	second := createTestStudent(t, db, "second@example.com")

	_, err := svc.Allocate(context.Background(), room.ID, first.ID)
	require.NoError(t, err)

	result, err := svc.Allocate(context.Background(), room.ID, second.ID)
	require.NoError(t, err)

	// phòng full khi và chỉ khi số người ở bằng capacity
	assert.Equal(t, constants.RoomStatusFull, result.Status)
	assert.Equal(t, room.Capacity, result.CurrentOccupants())
}

func TestAllocateFullRoomRejectedWithoutMutation(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-103", 1, constants.RoomStatusAvailable)
	first := createTestStudent(t, db, "first@example.com")
	second := createTestStudent(t, db, "second@example.com")

	_, err := svc.Allocate(context.Background(), room.ID, first.ID)
	require.NoError(t, err)

	_, err = svc.Allocate(context.Background(), room.ID, second.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
	assert.Equal(t, "Room is at full capacity", appErr.Message)

	var unchanged models.User
	require.NoError(t, db.First(&unchanged, second.ID).Error)
	assert.Nil(t, unchanged.RoomID)
}

func TestAllocateMaintenanceRoomRejected(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-104", 2, constants.RoomStatusMaintenance)
	student := createTestStudent(t, db, "a@example.com")

	_, err := svc.Allocate(context.Background(), room.ID, student.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Room is under maintenance", appErr.Message)
}

func TestAllocateRoomNotFound(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	student := createTestStudent(t, db, "a@example.com")

	_, err := svc.Allocate(context.Background(), 999, student.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "Room not found", appErr.Message)
}

func TestAllocateStudentNotFound(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-105", 2, constants.RoomStatusAvailable)

	_, err := svc.Allocate(context.Background(), room.ID, 999)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestAllocateNonStudentRejected(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-106", 2, constants.RoomStatusAvailable)
	warden := &models.User{
		Name:     "Warden",
		Email:    "warden@example.com",
		Password: "hashed",
		Role:     constants.RoleWarden,
	}
	require.NoError(t, db.Create(warden).Error)

	_, err := svc.Allocate(context.Background(), room.ID, warden.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestAllocateAlreadyAllocatedRejected(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	roomA := createTestRoom(t, db, "A-107", 2, constants.RoomStatusAvailable)
	roomB := createTestRoom(t, db, "B-201", 2, constants.RoomStatusAvailable)
	student := createTestStudent(t, db, "a@example.com")

	_, err := svc.Allocate(context.Background(), roomA.ID, student.ID)
	require.NoError(t, err)

	_, err = svc.Allocate(context.Background(), roomB.ID, student.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Student is already allocated to a room. Deallocate first.", appErr.Message)

	// vẫn ở phòng cũ
	var unchanged models.User
	require.NoError(t, db.First(&unchanged, student.ID).Error)
	require.NotNil(t, unchanged.RoomID)
	assert.Equal(t, roomA.ID, *unchanged.RoomID)
}

func TestDeallocateSuccess(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-108", 1, constants.RoomStatusAvailable)
	student := createTestStudent(t, db, "a@example.com")

	full, err := svc.Allocate(context.Background(), room.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusFull, full.Status)

	result, err := svc.Deallocate(context.Background(), room.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, result.Status)
	assert.Equal(t, 0, result.CurrentOccupants())

	var updated models.User
	require.NoError(t, db.First(&updated, student.ID).Error)
	assert.Nil(t, updated.RoomID)
	assert.Empty(t, updated.Block)
}

func TestDeallocateStudentNotInRoom(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-109", 2, constants.RoomStatusAvailable)
	other := createTestRoom(t, db, "A-110", 2, constants.RoomStatusAvailable)
	student := createTestStudent(t, db, "a@example.com")

	_, err := svc.Allocate(context.Background(), other.ID, student.ID)
	require.NoError(t, err)

	_, err = svc.Deallocate(context.Background(), room.ID, student.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Student is not in this room", appErr.Message)

	// không có gì bị thay đổi
	var unchanged models.User
	require.NoError(t, db.First(&unchanged, student.ID).Error)
	require.NotNil(t, unchanged.RoomID)
	assert.Equal(t, other.ID, *unchanged.RoomID)
}

func TestDeleteRoomWithOccupantsRejected(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-111", 2, constants.RoomStatusAvailable)
	student := createTestStudent(t, db, "a@example.com")

	_, err := svc.Allocate(context.Background(), room.ID, student.ID)
	require.NoError(t, err)

	err = svc.DeleteRoom(context.Background(), room.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Cannot delete a room with occupants. Remove all occupants first.", appErr.Message)

	var count int64
	db.Model(&models.Room{}).Where("id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteEmptyRoom(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "A-112", 2, constants.RoomStatusAvailable)

	require.NoError(t, svc.DeleteRoom(context.Background(), room.ID))

	var count int64
	db.Model(&models.Room{}).Where("id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// Vòng đời đầy đủ của một phòng 2 chỗ: hai lần xếp, lần ba bị chặn,
// rút một người thì phòng mở lại.
func TestRoomLifecycle(t *testing.T) {
	db := newAllocationTestDB(t)
	svc := NewAllocationService(AllocationServiceOptions{DB: db, Logger: logger.Nop{}})

	room := createTestRoom(t, db, "C-301", 2, constants.RoomStatusAvailable)
	alice := createTestStudent(t, db, "alice@example.com")
	bob := createTestStudent(t, db, "bob@example.com")
	carol := createTestStudent(t, db, "carol@example.com")

	_, err := svc.Allocate(context.Background(), room.ID, alice.ID)
	require.NoError(t, err)

	result, err := svc.Allocate(context.Background(), room.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusFull, result.Status)

	_, err = svc.Allocate(context.Background(), room.ID, carol.ID)
	require.Error(t, err)

	result, err = svc.Deallocate(context.Background(), room.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, result.Status)
	assert.Equal(t, 1, result.CurrentOccupants())

	result, err = svc.Allocate(context.Background(), room.ID, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusFull, result.Status)
}
