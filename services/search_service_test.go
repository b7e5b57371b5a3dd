package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostelhub/constants"
	"hostelhub/models"
)

func newSearchTestDB(t *testing.T) *gorm.DB {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}))
	return db
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "phong don", normalizeInput("  Phòng Đơn "))
	assert.Equal(t, "a-101", normalizeInput("A-101"))
}

func TestParseRoomType(t *testing.T) {
	cases := map[string]string{
		"single room in block A": constants.RoomTypeSingle,
		"need a double":          constants.RoomTypeDouble,
		"triple for friends":     constants.RoomTypeTriple,
		"quad near canteen":      constants.RoomTypeQuad,
		"block b ground floor":   "",
	}
	for query, want := range cases {
		assert.Equal(t, want, parseRoomType(query), "query: %s", query)
	}
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("a-101", "a-101"))
	// một thay thế ký tự có cost 2 với DefaultOptions, 1 - 2/5 = 0.6
	assert.InDelta(t, 0.6, calculateSimilarity("a-101", "a-102"), 0.001)
	// một ký tự chèn thêm có cost 1, 1 - 1/6 ≈ 0.833
	assert.Greater(t, calculateSimilarity("a-101", "a-1011"), 0.8)
	assert.Less(t, calculateSimilarity("a-101", "z-999"), 0.5)
}

func TestSuggestRoomsRanksExactNumberFirst(t *testing.T) {
	db := newSearchTestDB(t)

	rooms := []models.Room{
		{RoomNumber: "A-101", Block: "A", Type: constants.RoomTypeDouble, Capacity: 2},
		{RoomNumber: "A-102", Block: "A", Type: constants.RoomTypeDouble, Capacity: 2},
		{RoomNumber: "B-201", Block: "B", Type: constants.RoomTypeSingle, Capacity: 1},
	}
	require.NoError(t, db.Create(&rooms).Error)

	scored, err := SuggestRooms(context.Background(), db, "a-101", 5)
	require.NoError(t, err)
	require.NotEmpty(t, scored)

	assert.Equal(t, "A-101", scored[0].Room.RoomNumber)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestSuggestRoomsHonorsLimit(t *testing.T) {
	db := newSearchTestDB(t)

	rooms := []models.Room{
		{RoomNumber: "A-101", Block: "A", Type: constants.RoomTypeDouble, Capacity: 2},
		{RoomNumber: "A-102", Block: "A", Type: constants.RoomTypeDouble, Capacity: 2},
		{RoomNumber: "A-103", Block: "A", Type: constants.RoomTypeDouble, Capacity: 2},
	}
	require.NoError(t, db.Create(&rooms).Error)

	scored, err := SuggestRooms(context.Background(), db, "double in block a", 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(scored), 2)
}

func TestSuggestRoomsEmptyDatabase(t *testing.T) {
	db := newSearchTestDB(t)

	scored, err := SuggestRooms(context.Background(), db, "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, scored)
}
