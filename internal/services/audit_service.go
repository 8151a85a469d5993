package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"privatemarkets/internal/logger"
	"privatemarkets/internal/models"
)

// auditService appends write events to audit_logs.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records entry. Recording is best effort: the write it describes has
// already committed, so failures are logged and dropped.
func (s *auditService) Log(ctx context.Context, entry AuditEntry) {
	log := logger.Get().With(
		"action", entry.Action,
		"resource_type", entry.ResourceType,
		"resource_id", entry.ResourceID,
		"request_id", entry.RequestID,
	)

	record := &models.AuditLog{
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		IPAddress:    entry.IPAddress,
		RequestID:    entry.RequestID,
	}
	if len(entry.Changes) > 0 {
		data, err := json.Marshal(entry.Changes)
		if err != nil {
			log.Warnw("audit changes not serializable, recording without them", "error", err)
		} else {
			record.Changes = string(data)
		}
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		log.Errorw("failed to record audit entry", "error", err)
	}
}
