package jobs

import (
	"hikebook/services/logger"

	"github.com/robfig/cron/v3"
)

// SessionSweeper là store có thể dọn các session đã hết hạn
type SessionSweeper interface {
	Sweep() int
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, sweeper SessionSweeper, log logger.Logger) error {
	// Cron job dọn session hết hạn mỗi 5 phút
	_, err := c.AddFunc("*/5 * * * *", func() {
		SweepSessions(sweeper, log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

// SweepSessions xóa session hết hạn khỏi bộ nhớ
func SweepSessions(sweeper SessionSweeper, log logger.Logger) int {
	removed := sweeper.Sweep()
	if removed > 0 {
		log.Info("Đã xóa %d session hết hạn", removed)
	}
	return removed
}
