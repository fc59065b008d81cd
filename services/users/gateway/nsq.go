package gateway

import (
	"context"
	"fmt"

	"github.com/greentrip/greentrip/internal/pkg/models"
	nsqpkg "github.com/greentrip/greentrip/internal/pkg/nsq"
)

// UserGW queues verification emails over NSQ. The email worker consumes the
// topic and delivers the message.
type UserGW struct {
	cfg      *models.Config
	producer *nsqpkg.Producer
}

// NewUserGW creates a new user gateway
func NewUserGW(cfg *models.Config, producer *nsqpkg.Producer) *UserGW {
	return &UserGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishVerificationEmail queues a verification email event
func (g *UserGW) PublishVerificationEmail(ctx context.Context, event models.VerificationEmailEvent) error {
	if err := g.producer.Publish(g.cfg.NSQ.EmailTopic, event); err != nil {
		return fmt.Errorf("failed to publish verification email event: %w", err)
	}
	return nil
}
