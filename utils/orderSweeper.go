package utils

import (
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// orderTTL is how long a gateway order stays payable before the sweeper
// marks it expired
const orderTTL = 24 * time.Hour

// StartOrderSweeper runs an hourly job that expires stale payment orders.
// Orders the gateway never confirmed stay CREATED forever otherwise.
func StartOrderSweeper() *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		cutoff := time.Now().Add(-orderTTL)

		result := database.Database.Db.
			Model(&models.PaymentOrder{}).
			Where("status = ? AND created_at < ?", models.OrderStatusCreated, cutoff).
			Update("status", models.OrderStatusExpired)

		if result.Error != nil {
			log.Printf("[ORDER-SWEEPER] Error expiring stale orders: %v", result.Error)
			return
		}
		if result.RowsAffected > 0 {
			log.Printf("[ORDER-SWEEPER] Expired %d stale orders", result.RowsAffected)
		}
	})

	c.Start()
	return c
}
