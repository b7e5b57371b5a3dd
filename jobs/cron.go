package jobs

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"hostelhub/config"
	"hostelhub/services"
	"hostelhub/services/notification"
	"hostelhub/utils"
)

// OverdueFeeSweeper định nghĩa interface cho việc quét phí quá hạn
type OverdueFeeSweeper interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type defaultSweeper struct{}

func (defaultSweeper) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	return services.MarkOverdueFees(ctx, config.DB, now)
}

var sweeper OverdueFeeSweeper = defaultSweeper{}

// SetOverdueFeeSweeper thiết lập implementation cho OverdueFeeSweeper
func SetOverdueFeeSweeper(s OverdueFeeSweeper) {
	sweeper = s
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: chuyển phí chưa trả quá hạn sang overdue
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogJob("Đang quét phí quá hạn lúc: %v", now)

		count, err := sweeper.MarkOverdue(context.Background(), now)
		if err != nil {
			utils.LogError("Lỗi khi quét phí quá hạn: %v", err)
			return
		}
		utils.LogJob("Đã chuyển %d khoản phí sang trạng thái overdue", count)

		if count > 0 && m != nil {
			svc := notification.NewMelodyService(m)
			if err := svc.SendMessage(`{"type":"fees.overdue","count":` + strconv.FormatInt(count, 10) + `}`); err != nil {
				log.Printf("Lỗi khi broadcast kết quả quét phí: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
