// Package gormstore persists deal plans in SQLite through gorm, satisfying
// dealplan.Repository.
package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigdesk/internal/dealplan"
	"sigdesk/internal/store/model"
	"sigdesk/internal/types"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormStore implements deal plan storage using gorm + SQLite.
type GormStore struct {
	db *gorm.DB
}

var _ dealplan.Repository = (*GormStore)(nil)

// NewGormStore opens (creating if needed) the deal plan database at path.
func NewGormStore(path string) (*GormStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("gorm store: deal plan db path cannot be empty")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&cache=shared", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.DealPlanModel{}); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite + WAL: a little parallelism for concurrent HTTP reads while
	// keeping lock contention low.
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(2)
	return &GormStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *GormStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) Get(ctx context.Context, focusID, weekOf string) (*types.DealPlan, error) {
	var m model.DealPlanModel
	err := s.db.WithContext(ctx).
		Where("focus_id = ? AND week_of = ?", focusID, weekOf).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	plan, err := fromModel(m)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *GormStore) List(ctx context.Context, focusID string) ([]types.DealPlan, error) {
	q := s.db.WithContext(ctx).Model(&model.DealPlanModel{})
	if focusID != "" {
		q = q.Where("focus_id = ?", focusID)
	}
	var rows []model.DealPlanModel
	if err := q.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]types.DealPlan, 0, len(rows))
	for _, m := range rows {
		plan, err := fromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, plan)
	}
	return out, nil
}

func (s *GormStore) Upsert(ctx context.Context, plan *types.DealPlan) error {
	m, err := toModel(plan)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "focus_id"}, {Name: "week_of"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func toModel(plan *types.DealPlan) (model.DealPlanModel, error) {
	snapshots, err := json.Marshal(plan.PromotedSignals)
	if err != nil {
		return model.DealPlanModel{}, fmt.Errorf("encoding promoted signals failed: %w", err)
	}
	return model.DealPlanModel{
		ID:            plan.ID,
		FocusID:       plan.FocusID,
		WeekOf:        plan.WeekOf,
		Status:        string(plan.Status),
		SnapshotsJSON: snapshots,
		CreatedAt:     plan.CreatedAt,
		UpdatedAt:     plan.UpdatedAt,
	}, nil
}

func fromModel(m model.DealPlanModel) (types.DealPlan, error) {
	plan := types.DealPlan{
		ID:              m.ID,
		FocusID:         m.FocusID,
		WeekOf:          m.WeekOf,
		Status:          types.DealPlanStatus(m.Status),
		PromotedSignals: []types.PromotedSignal{},
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.SnapshotsJSON) > 0 {
		if err := json.Unmarshal(m.SnapshotsJSON, &plan.PromotedSignals); err != nil {
			return types.DealPlan{}, fmt.Errorf("decoding promoted signals failed: %w", err)
		}
	}
	return plan, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
