package service

import (
	"github.com/google/uuid"
	"github.com/item-report-generator/internal/config"
	"github.com/item-report-generator/internal/database"
	"github.com/item-report-generator/internal/models"
	"github.com/rs/zerolog"
)

// ReportGenerator renders CSV and HTML item reports for a user.
// It is stateless after construction and safe for concurrent use.
type ReportGenerator struct {
	db  *database.DB
	cfg config.ReportConfig
	log zerolog.Logger
}

// NewReportGenerator creates a ReportGenerator. db may be nil; it is kept
// for collaborators that load items and is never queried here.
func NewReportGenerator(db *database.DB, cfg config.ReportConfig, log zerolog.Logger) *ReportGenerator {
	return &ReportGenerator{
		db:  db,
		cfg: cfg,
		log: log.With().Str("service", "report").Logger(),
	}
}

// DB returns the database handle the generator was constructed with
func (g *ReportGenerator) DB() *database.DB {
	return g.db
}

// GenerateReport filters items for the user's role, formats one row per
// visible item, totals their values and assembles the document.
// Unsupported report types yield an empty string.
func (g *ReportGenerator) GenerateReport(reportType models.ReportType, user models.User, items []models.Item) string {
	visible := g.VisibleItems(user.Role, items)
	rows := g.FormatRows(reportType, user, visible)
	total := g.Total(visible)

	if e := g.log.Debug(); e.Enabled() {
		e.Str("report_id", uuid.NewString()).
			Str("report_type", string(reportType)).
			Str("role", string(user.Role)).
			Int("items", len(items)).
			Int("visible", len(visible)).
			Float64("total", total).
			Msg("Generating report")
	}

	return g.Assemble(reportType, user, rows, total)
}

// VisibleItems applies the visibility policy of role to items
func (g *ReportGenerator) VisibleItems(role models.Role, items []models.Item) []models.AnnotatedItem {
	return policyFor(role, g.cfg)(items)
}

// FormatRows renders one row per item in the given format.
// Unsupported types have no row format and yield nil.
func (g *ReportGenerator) FormatRows(reportType models.ReportType, user models.User, items []models.AnnotatedItem) []string {
	var format func(models.AnnotatedItem) string
	switch reportType {
	case models.ReportTypeCSV:
		format = func(item models.AnnotatedItem) string { return formatCSVRow(item, user) }
	case models.ReportTypeHTML:
		format = formatHTMLRow
	default:
		return nil
	}

	rows := make([]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, format(item))
	}
	return rows
}

// Total sums the values of the visible items
func (g *ReportGenerator) Total(items []models.AnnotatedItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Value
	}
	return total
}

// Assemble builds the final document for reportType
func (g *ReportGenerator) Assemble(reportType models.ReportType, user models.User, rows []string, total float64) string {
	switch reportType {
	case models.ReportTypeCSV:
		return buildCSVReport(rows, total)
	case models.ReportTypeHTML:
		return buildHTMLReport(user, rows, total)
	default:
		// TODO: decide with report consumers whether this should become an error
		// instead of an empty document.
		g.log.Warn().
			Str("report_type", string(reportType)).
			Msg("Unsupported report type, returning empty document")
		return ""
	}
}
