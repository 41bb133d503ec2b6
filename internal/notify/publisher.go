// Package notify publishes domain events to RabbitMQ for out-of-process
// consumers (mobile push, analytics). The publisher is optional: when no
// broker is configured the service runs without it.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"fittrack/internal/models"

	"github.com/streadway/amqp"
)

const unlockRoutingKey = "achievement.unlocked"

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher dials the broker and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

type unlockEvent struct {
	UserID        uint   `json:"user_id"`
	AchievementID uint   `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	UnlockedAt    string `json:"unlocked_at"`
}

// PublishUnlock emits an achievement-unlocked event.
func (p *Publisher) PublishUnlock(userID uint, achievement models.Achievement) error {
	body, err := json.Marshal(unlockEvent{
		UserID:        userID,
		AchievementID: achievement.ID,
		Name:          achievement.Name,
		Description:   achievement.Description,
		UnlockedAt:    time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal unlock event: %w", err)
	}

	return p.channel.Publish(p.exchange, unlockRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
