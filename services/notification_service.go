package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationService creates in-app notifications and their outbox events.
// Both rows are written in the caller's transaction so a notification and
// its event are either both committed or neither.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Notify writes a notification for one customer plus a notification.created
// outbox event
func (s *NotificationService) Notify(tx *gorm.DB, userID uuid.UUID, notifType, title, body string) (*models.Notification, error) {
	notification := models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
	}
	if err := tx.Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := s.EmitEvent(tx, models.EventNotificationCreated, notification.ID, map[string]interface{}{
		"notification_id": notification.ID,
		"user_id":         userID,
		"type":            notifType,
		"title":           title,
	}); err != nil {
		return nil, err
	}

	return &notification, nil
}

// EmitEvent appends a pending outbox row. cmd/worker picks it up and
// publishes it to Kafka.
func (s *NotificationService) EmitEvent(tx *gorm.DB, eventType string, aggregateID uuid.UUID, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	event := models.OutboxEvent{
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     datatypes.JSON(data),
	}
	if err := tx.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to write outbox event: %w", err)
	}

	return nil
}

// Global instance
var notificationService *NotificationService

func GetNotificationService() *NotificationService {
	if notificationService == nil {
		notificationService = NewNotificationService()
	}
	return notificationService
}

// EmitEvent appends an outbox event using the global service
func EmitEvent(tx *gorm.DB, eventType string, aggregateID uuid.UUID, payload map[string]interface{}) error {
	return GetNotificationService().EmitEvent(tx, eventType, aggregateID, payload)
}

// NotifyUser creates a notification using the global service
func NotifyUser(tx *gorm.DB, userID uuid.UUID, notifType, title, body string) (*models.Notification, error) {
	return GetNotificationService().Notify(tx, userID, notifType, title, body)
}
