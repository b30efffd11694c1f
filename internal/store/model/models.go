package model

import (
	"time"

	"gorm.io/datatypes"
)

// DealPlanModel is the persisted form of a deal plan. The promoted signal
// snapshots are stored as a JSON column; they are read and written as a unit
// and never queried field-by-field.
type DealPlanModel struct {
	ID            string         `gorm:"column:id;primaryKey"`
	FocusID       string         `gorm:"column:focus_id;uniqueIndex:idx_focus_week"`
	WeekOf        string         `gorm:"column:week_of;uniqueIndex:idx_focus_week"`
	Status        string         `gorm:"column:status"`
	SnapshotsJSON datatypes.JSON `gorm:"column:snapshots_json"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (DealPlanModel) TableName() string { return "deal_plans" }
