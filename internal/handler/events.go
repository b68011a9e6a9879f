package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

const (
	notificationQueue = "notification_queue"
	dashboardStatsKey = "stats_dashboard"
)

// publishNotification hands a message to the notifier worker. Delivery is
// best effort: a broker hiccup is logged and the request still succeeds,
// since the assignment itself is already committed.
func (h *Handler) publishNotification(r *http.Request, message domain.NotificationMessage) {
	body, err := json.Marshal(message)
	if err != nil {
		slog.Error("failed to encode notification", "type", message.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	err = h.notifyChannel.PublishWithContext(ctx,
		"",
		notificationQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		slog.Error("failed to publish notification", "type", message.Type, "error", err)
	}
}

// invalidateStatsCache drops the cached dashboard snapshot after any
// write that could change it.
func (h *Handler) invalidateStatsCache(r *http.Request) {
	if err := h.redisClient.Del(r.Context(), dashboardStatsKey).Err(); err != nil {
		slog.Error("failed to invalidate stats cache", "error", err)
	}
}
