package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports connectivity of the two backing stores plus the depth of
// the async job queues, so a stuck worker pool shows up as growing numbers
// here before leads stop arriving in anyone's inbox.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		filaEmail, filaPlanilha := int64(-1), int64(-1)
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		} else {
			filaEmail = rdb.LLen(ctx, worker.QueueEmail).Val()
			filaPlanilha = rdb.LLen(ctx, worker.QueuePlanilha).Val()
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
			"filas": gin.H{
				"email":    filaEmail,
				"planilha": filaPlanilha,
			},
		})
	}
}
