package store

import "github.com/startupcomply/comply/internal/models"

type ReportRepository struct {
	kv *KV
}

func NewReportRepository(kv *KV) *ReportRepository {
	return &ReportRepository{kv: kv}
}

// GetAll returns reports newest-first.
func (repo *ReportRepository) GetAll() []models.Report {
	return Read(repo.kv, KeyReports, defaultReports())
}

// Add prepends. Reports are not capped, unlike activities and
// notifications.
func (repo *ReportRepository) Add(report models.Report) {
	repo.kv.WithLock(KeyReports, func() {
		reports := repo.GetAll()
		reports = append([]models.Report{report}, reports...)
		Write(repo.kv, KeyReports, reports)
	})
}
