package repository

import (
	"context"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// TechRepository handles field-technician form submissions.
type TechRepository struct {
	db *gorm.DB
}

// NewTechRepository creates a new TechRepository.
func NewTechRepository(db *gorm.DB) *TechRepository {
	return &TechRepository{db: db}
}

// CreateJSA inserts a job safety analysis submission.
func (r *TechRepository) CreateJSA(ctx context.Context, jsa *domain.TechJSA) error {
	return r.db.WithContext(ctx).Create(jsa).Error
}

// ListJSAs retrieves JSA submissions. jobID and technicianID filters are
// conjunctive; empty values are skipped.
func (r *TechRepository) ListJSAs(ctx context.Context, jobID, technicianID string) ([]domain.TechJSA, error) {
	query := r.db.WithContext(ctx)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if technicianID != "" {
		query = query.Where("technician_id = ?", technicianID)
	}
	var jsas []domain.TechJSA
	if err := query.Order("submitted_at DESC").Find(&jsas).Error; err != nil {
		return nil, err
	}
	return jsas, nil
}

// CreateDamageScan inserts a damage scan submission.
func (r *TechRepository) CreateDamageScan(ctx context.Context, scan *domain.TechDamageScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

// ListDamageScans retrieves damage scans. jobID and technicianID filters
// are conjunctive; empty values are skipped.
func (r *TechRepository) ListDamageScans(ctx context.Context, jobID, technicianID string) ([]domain.TechDamageScan, error) {
	query := r.db.WithContext(ctx)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if technicianID != "" {
		query = query.Where("technician_id = ?", technicianID)
	}
	var scans []domain.TechDamageScan
	if err := query.Order("submitted_at DESC").Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

// CreateDetachReport inserts a detach field report.
func (r *TechRepository) CreateDetachReport(ctx context.Context, report *domain.TechDetachReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// ListDetachReports retrieves detach reports. jobID and technicianID
// filters are conjunctive; empty values are skipped.
func (r *TechRepository) ListDetachReports(ctx context.Context, jobID, technicianID string) ([]domain.TechDetachReport, error) {
	query := r.db.WithContext(ctx)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if technicianID != "" {
		query = query.Where("technician_id = ?", technicianID)
	}
	var reports []domain.TechDetachReport
	if err := query.Order("submitted_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateResetReport inserts a reset field report.
func (r *TechRepository) CreateResetReport(ctx context.Context, report *domain.TechResetReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// ListResetReports retrieves reset reports. jobID and technicianID
// filters are conjunctive; empty values are skipped.
func (r *TechRepository) ListResetReports(ctx context.Context, jobID, technicianID string) ([]domain.TechResetReport, error) {
	query := r.db.WithContext(ctx)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if technicianID != "" {
		query = query.Where("technician_id = ?", technicianID)
	}
	var reports []domain.TechResetReport
	if err := query.Order("submitted_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
