package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelhub/constants"
	apperrors "hostelhub/errors"
	"hostelhub/models"
	"hostelhub/services/logger"
)

// AllocationService giữ bất biến giữa phòng và sinh viên:
// mỗi sinh viên tối đa một phòng, số người ở không vượt capacity,
// status "full" đi theo số người ở.
type AllocationService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AllocationServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAllocationService(opts AllocationServiceOptions) *AllocationService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AllocationService{db: opts.DB, logger: l}
}

// lockForUpdate khóa row phòng trong transaction. SQLite không có row lock
// nhưng transaction của nó vốn tuần tự hóa writer nên bỏ qua được.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Allocate xếp sinh viên vào phòng. Cả hai phía của quan hệ được ghi trong
// một transaction, capacity được kiểm tra lại sau khi giữ khóa row phòng
// nên hai request đồng thời không thể cùng vượt qua bước kiểm tra.
func (s *AllocationService) Allocate(ctx context.Context, roomID, studentID uint) (*models.Room, error) {
	var room models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Room not found")
			}
			return err
		}

		var occupancy int64
		if err := tx.Model(&models.User{}).Where("room_id = ?", room.ID).Count(&occupancy).Error; err != nil {
			return err
		}

		if occupancy >= int64(room.Capacity) {
			return apperrors.Conflict("Room is at full capacity")
		}

		if room.Status == constants.RoomStatusMaintenance {
			return apperrors.Conflict("Room is under maintenance")
		}

		var student models.User
		if err := tx.First(&student, studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Student not found")
			}
			return err
		}
		if student.Role != constants.RoleStudent {
			return apperrors.NotFound("Student not found")
		}

		if student.RoomID != nil {
			return apperrors.Conflict("Student is already allocated to a room. Deallocate first.")
		}

		updates := map[string]interface{}{"room_id": room.ID, "block": room.Block}
		if err := tx.Model(&student).Updates(updates).Error; err != nil {
			return err
		}

		if occupancy+1 >= int64(room.Capacity) {
			room.Status = constants.RoomStatusFull
			if err := tx.Model(&room).Update("status", room.Status).Error; err != nil {
				return err
			}
		}

		s.logger.Info("allocated student %d to room %s", studentID, room.RoomNumber)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.RoomWithOccupants(ctx, room.ID)
}

// Deallocate đưa sinh viên ra khỏi phòng, trả phòng "full" về "available".
func (s *AllocationService) Deallocate(ctx context.Context, roomID, studentID uint) (*models.Room, error) {
	var room models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Room not found")
			}
			return err
		}

		var student models.User
		err := tx.Where("id = ? AND room_id = ?", studentID, room.ID).First(&student).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Conflict("Student is not in this room")
			}
			return err
		}

		updates := map[string]interface{}{"room_id": nil, "block": ""}
		if err := tx.Model(&student).Updates(updates).Error; err != nil {
			return err
		}

		// chỉ "full" tự về "available"; "reserved" và "maintenance"
		// do admin đặt tay nên giữ nguyên
		if room.Status == constants.RoomStatusFull {
			room.Status = constants.RoomStatusAvailable
			if err := tx.Model(&room).Update("status", room.Status).Error; err != nil {
				return err
			}
		}

		s.logger.Info("deallocated student %d from room %s", studentID, room.RoomNumber)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.RoomWithOccupants(ctx, room.ID)
}

// DeleteRoom xóa phòng, chặn khi còn người ở.
func (s *AllocationService) DeleteRoom(ctx context.Context, roomID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Room not found")
			}
			return err
		}

		var occupancy int64
		if err := tx.Model(&models.User{}).Where("room_id = ?", room.ID).Count(&occupancy).Error; err != nil {
			return err
		}
		if occupancy > 0 {
			return apperrors.Conflict("Cannot delete a room with occupants. Remove all occupants first.")
		}

		return tx.Delete(&models.Room{}, room.ID).Error
	})
}

// RoomWithOccupants load lại phòng kèm danh sách người ở
func (s *AllocationService) RoomWithOccupants(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Preload("Occupants").First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Room not found")
		}
		return nil, err
	}
	return &room, nil
}
