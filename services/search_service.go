package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"hostelhub/constants"
	"hostelhub/models"
)

// ScoredRoom phòng kèm điểm phù hợp với query
type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// parseRoomType ánh xạ từ khóa trong query sang loại phòng
func parseRoomType(query string) string {
	typeKeywords := map[string][]string{
		constants.RoomTypeSingle: {"single", "1 bed", "one bed"},
		constants.RoomTypeDouble: {"double", "2 bed", "two bed", "twin"},
		constants.RoomTypeTriple: {"triple", "3 bed", "three bed"},
		constants.RoomTypeQuad:   {"quad", "4 bed", "four bed", "quadruple"},
	}

	normalized := normalizeInput(query)
	for roomType, keywords := range typeKeywords {
		matcher := createMatcher(keywords)
		match := matcher.Closest(normalized)
		if match != "" && strings.Contains(normalized, match) {
			return roomType
		}
	}
	return ""
}

// prepareBlockList danh sách block duy nhất đã chuẩn hóa cho closestmatch
func prepareBlockList(rooms []models.Room) []string {
	uniqueBlocks := make(map[string]bool)
	for _, room := range rooms {
		if room.Block != "" {
			uniqueBlocks[normalizeInput(room.Block)] = true
		}
	}

	blocks := make([]string, 0, len(uniqueBlocks))
	for b := range uniqueBlocks {
		blocks = append(blocks, b)
	}
	return blocks
}

// calculateRoomScore tính điểm phù hợp cho một phòng
func calculateRoomScore(query string, room models.Room, cmBlock *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if roomType := parseRoomType(normalizedQuery); roomType != "" && roomType == room.Type {
		score += 15
	}

	if cmBlock.Closest(normalizedQuery) == normalizeInput(room.Block) {
		score += 13
	}

	normalizedNumber := normalizeInput(room.RoomNumber)
	if strings.Contains(normalizedQuery, normalizedNumber) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedNumber) > 0.7 {
		score += 8
	}

	return score
}

// SuggestRooms chấm điểm toàn bộ phòng theo query và trả về tối đa limit
// kết quả, điểm cao trước.
func SuggestRooms(ctx context.Context, db *gorm.DB, query string, limit int) ([]ScoredRoom, error) {
	var rooms []models.Room
	if err := db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, err
	}

	cmBlock := createMatcher(prepareBlockList(rooms))

	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := calculateRoomScore(query, room, cmBlock)
			if score > 0 {
				scoreCh <- ScoredRoom{Room: room, Score: score}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	scored := make([]ScoredRoom, 0, len(rooms))
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
