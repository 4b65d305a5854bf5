package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/report"
)

// reportService loads a user's data into a report.Snapshot and derives
// the monthly report. All computation lives in the pure report package;
// this service only owns the snapshot load.
type reportService struct {
	db    *gorm.DB
	clock Clock
}

// NewReportService creates a ReportServicer using the wall clock.
func NewReportService(db *gorm.DB) ReportServicer {
	return NewReportServiceWithClock(db, time.Now)
}

// NewReportServiceWithClock creates a ReportServicer with an explicit clock.
func NewReportServiceWithClock(db *gorm.DB, clock Clock) ReportServicer {
	return &reportService{db: db, clock: clock}
}

// MonthlySummary builds the report for the month containing "now".
// Reads take no locks; a summary may trail an in-flight expense by one
// refresh, which callers tolerate.
func (s *reportService) MonthlySummary(userID uint) (*report.MonthlyReport, error) {
	snap, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	rep := report.Build(snap, s.clock())
	return &rep, nil
}

func (s *reportService) loadSnapshot(userID uint) (report.Snapshot, error) {
	var snap report.Snapshot

	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return snap, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, e := range expenses {
		snap.Expenses = append(snap.Expenses, report.Expense{
			Category:    e.Category,
			AmountCents: e.AmountCents,
			Date:        e.Date,
		})
	}

	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return snap, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, in := range incomes {
		snap.Incomes = append(snap.Incomes, report.Income{
			Source:      in.Source,
			AmountCents: in.AmountCents,
			Date:        in.Date,
		})
	}

	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return snap, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, g := range goals {
		snap.Goals = append(snap.Goals, report.Goal{
			Category:   g.Category,
			LimitCents: g.LimitCents,
		})
	}

	return snap, nil
}
