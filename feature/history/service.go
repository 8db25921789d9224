package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service records and lists reconciliation runs.
type Service struct {
	db *gorm.DB
}

// NewService creates the history service and migrates the runs table.
func NewService(db *gorm.DB) (*Service, error) {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate runs table: %w", err)
	}
	return &Service{db: db}, nil
}

// Record appends one run. The ID is assigned here.
func (s *Service) Record(ctx context.Context, run Run) error {
	run.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
