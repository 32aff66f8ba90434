// Package alertrepo is the PostgreSQL alert sink.
package alertrepo

import (
	"context"
	"errors"
	"time"

	"fleet/internal/core/domain/model/alert"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// AlertDTO is one stored alert.
type AlertDTO struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	Type        string    `gorm:"type:varchar(32);not null;index"`
	Message     string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"type:varchar(16);not null"`
	RelatedKind *string   `gorm:"type:varchar(16)"`
	RelatedID   *string   `gorm:"type:varchar(64);index"`
	Timestamp   time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default "alert_dtos".
func (AlertDTO) TableName() string {
	return "alerts"
}

// GormAlertSink implements AlertSink using GORM.
type GormAlertSink struct {
	db *gorm.DB
}

// NewGormAlertSink creates a new GORM alert sink.
func NewGormAlertSink(db *gorm.DB) *GormAlertSink {
	return &GormAlertSink{db: db}
}

// Create stores an alert.
func (s *GormAlertSink) Create(ctx context.Context, a alert.Alert) error {
	dto := AlertDTO{
		ID:        a.ID,
		Type:      string(a.Type),
		Message:   a.Message,
		Priority:  string(a.Priority),
		Timestamp: a.Timestamp.UTC(),
	}
	if a.Related != nil {
		kind := string(a.Related.Kind)
		id := a.Related.ID
		dto.RelatedKind = &kind
		dto.RelatedID = &id
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("alert", a.ID)
		}
		return err
	}
	return nil
}

// Recent returns up to limit alerts, newest first.
func (s *GormAlertSink) Recent(ctx context.Context, limit int) ([]alert.Alert, error) {
	var dtos []AlertDTO
	if err := s.db.WithContext(ctx).Order("timestamp DESC, id").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}

	alerts := make([]alert.Alert, 0, len(dtos))
	for _, dto := range dtos {
		a := alert.Alert{
			ID:        dto.ID,
			Type:      alert.Type(dto.Type),
			Message:   dto.Message,
			Priority:  alert.Priority(dto.Priority),
			Timestamp: dto.Timestamp,
		}
		if dto.RelatedKind != nil && dto.RelatedID != nil {
			a.Related = &alert.Related{Kind: alert.EntityKind(*dto.RelatedKind), ID: *dto.RelatedID}
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}
