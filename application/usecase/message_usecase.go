package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/domain/entity"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/logger"
)

// Field limits for the public contact form.
const (
	messageNameMin    = 2
	messageNameMax    = 100
	messageSubjectMin = 5
	messageSubjectMax = 200
	messageBodyMin    = 10
	messageBodyMax    = 5000
)

type MessageUseCase struct {
	repo   outbound.MessageRepository
	logger logger.Logger
}

func NewMessageUseCase(repo outbound.MessageRepository, logger logger.Logger) inbound.MessageUseCase {
	return &MessageUseCase{repo: repo, logger: logger}
}

func (uc *MessageUseCase) List(ctx context.Context) ([]*entity.Message, error) {
	messages, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

func (uc *MessageUseCase) Create(ctx context.Context, req inbound.CreateMessageRequest) (*entity.Message, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	subject := strings.TrimSpace(req.Subject)
	body := strings.TrimSpace(req.Message)

	if err := validateMessage(name, email, subject, body); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.Create(ctx, message); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.logger.Info(ctx, "Contact message received", map[string]interface{}{
		"message_id": message.ID,
		"subject":    subject,
	})

	return message, nil
}

func (uc *MessageUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperror.NotFound("Message")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateMessage(name, email, subject, body string) error {
	if len(name) < messageNameMin || len(name) > messageNameMax {
		return apperror.Validation(fmt.Sprintf("Name must be between %d and %d characters", messageNameMin, messageNameMax))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperror.Validation("Please provide a valid email address")
	}
	if len(subject) < messageSubjectMin || len(subject) > messageSubjectMax {
		return apperror.Validation(fmt.Sprintf("Subject must be between %d and %d characters", messageSubjectMin, messageSubjectMax))
	}
	if len(body) < messageBodyMin || len(body) > messageBodyMax {
		return apperror.Validation(fmt.Sprintf("Message must be between %d and %d characters", messageBodyMin, messageBodyMax))
	}
	return nil
}
