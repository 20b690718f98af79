package core

import (
	"context"
	"fmt"

	"homestore-backend-go/internal/db"
	"homestore-backend-go/internal/models"
)

// auditService implements the AuditService interface.
type auditService struct {
	auditRepo db.AuditRepository
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository) AuditService {
	return &auditService{
		auditRepo: auditRepo,
	}
}

// CreateAuditLog records an audit trail event. Callers treat failures as
// non-fatal; the main operation has already committed.
func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if logEntry.UserID == "" || logEntry.Action == "" {
		return fmt.Errorf("audit log entry requires userId and action")
	}
	return s.auditRepo.Create(ctx, logEntry)
}
