package notification

import (
	"encoding/json"
	"fmt"

	"github.com/olahol/melody"

	"hostelhub/models"
)

// Service gửi thông báo realtime cho client đang kết nối
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BuildPayload đóng gói thông báo thành JSON cho websocket
func BuildPayload(n *models.Notification) string {
	payload := map[string]interface{}{
		"id":         n.ID,
		"title":      n.Title,
		"message":    n.Message,
		"type":       n.Type,
		"targetRole": n.TargetRole,
		"broadcast":  n.Broadcast,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"title":%q}`, n.Title)
	}
	return string(b)
}
