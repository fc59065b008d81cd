package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/greentrip/greentrip/internal/pkg/config"
	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/models"
	nsqpkg "github.com/greentrip/greentrip/internal/pkg/nsq"
)

// The email worker consumes verification email events published by the API
// and delivers them. Delivery is currently a structured log line carrying
// the verification link; an SMTP sender can replace handleVerificationEmail
// without touching the consumer wiring.
func main() {
	appName := "greentrip-email-worker"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("topic", configs.NSQ.EmailTopic),
	)

	consumer, err := nsqpkg.NewConsumer(
		configs.NSQ.EmailTopic,
		configs.NSQ.WorkerChannel,
		configs.NSQ.Address,
		handleVerificationEmail,
	)
	if err != nil {
		zapLogger.Fatal("Failed to start NSQ consumer", zap.Error(err))
	}
	defer consumer.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
}

func handleVerificationEmail(messageBody []byte) error {
	var event models.VerificationEmailEvent
	if err := nsqpkg.UnmarshalMessage(messageBody, &event); err != nil {
		return err
	}

	logger.Info("Sending verification email",
		logger.String("user_id", event.UserID.String()),
		logger.String("email", event.Email),
		logger.String("verify_url", event.VerifyURL),
	)
	return nil
}
