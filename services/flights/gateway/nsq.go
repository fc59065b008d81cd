package gateway

import (
	"context"
	"fmt"

	"github.com/greentrip/greentrip/internal/pkg/models"
	nsqpkg "github.com/greentrip/greentrip/internal/pkg/nsq"
)

// FlightGW publishes booking lifecycle events to NSQ
type FlightGW struct {
	cfg      *models.Config
	producer *nsqpkg.Producer
}

// NewFlightGW creates a new flight gateway
func NewFlightGW(cfg *models.Config, producer *nsqpkg.Producer) *FlightGW {
	return &FlightGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishBookingEvent publishes a booking lifecycle event
func (g *FlightGW) PublishBookingEvent(ctx context.Context, event models.BookingEvent) error {
	if err := g.producer.Publish(g.cfg.NSQ.BookingTopic, event); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}
