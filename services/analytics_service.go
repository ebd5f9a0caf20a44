package services

import (
	"context"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
)

// Summarizer turns the weekly sales series into a free-text report.
// Implementations never fail: on any error they return a fallback
// string, so callers can treat the result as always present.
type Summarizer interface {
	Summarize(ctx context.Context, sales []entity.SaleRecord) string
}

type AnalyticsService struct {
	Repo *repository.ReportRepository
	AI   Summarizer
}

func NewAnalyticsService(repo *repository.ReportRepository, ai Summarizer) *AnalyticsService {
	return &AnalyticsService{Repo: repo, AI: ai}
}

func (s *AnalyticsService) WeeklySales() ([]entity.SaleRecord, error) {
	return s.Repo.ListSales()
}

// GenerateReport feeds the sales series to the AI collaborator.
func (s *AnalyticsService) GenerateReport(ctx context.Context) (string, error) {
	sales, err := s.Repo.ListSales()
	if err != nil {
		return "", err
	}
	return s.AI.Summarize(ctx, sales), nil
}

func (s *AnalyticsService) Devices() ([]entity.Device, error) {
	return s.Repo.ListDevices()
}

func (s *AnalyticsService) RemoveDevice(id string) error {
	return s.Repo.DeleteDevice(id)
}
