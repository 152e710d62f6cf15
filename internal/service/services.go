package service

import (
	"github.com/item-report-generator/internal/config"
	"github.com/item-report-generator/internal/database"
	"github.com/item-report-generator/internal/models"
	"github.com/rs/zerolog"
)

// ReportService defines the interface for report rendering
type ReportService interface {
	GenerateReport(reportType models.ReportType, user models.User, items []models.Item) string
}

// Services holds all service interfaces
type Services struct {
	Report ReportService
}

// NewServices creates all services
func NewServices(db *database.DB, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Report: NewReportGenerator(db, cfg.Report, log),
	}
}
