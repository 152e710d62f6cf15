package models

import "strings"

// ReportType represents the output format of a report
type ReportType string

const (
	ReportTypeCSV  ReportType = "CSV"
	ReportTypeHTML ReportType = "HTML"
)

// ValidReportTypes defines the formats that produce a document
var ValidReportTypes = map[ReportType]bool{
	ReportTypeCSV:  true,
	ReportTypeHTML: true,
}

// ParseReportType normalises a report type string. Unknown values are kept
// as-is and render to an empty document.
func ParseReportType(s string) ReportType {
	return ReportType(strings.ToUpper(strings.TrimSpace(s)))
}

// IsValid reports whether the type produces a document
func (t ReportType) IsValid() bool {
	return ValidReportTypes[t]
}

// ContentType returns the MIME type a delivery layer should use,
// or "" for unsupported types.
func (t ReportType) ContentType() string {
	switch t {
	case ReportTypeCSV:
		return "text/csv; charset=utf-8"
	case ReportTypeHTML:
		return "text/html; charset=utf-8"
	default:
		return ""
	}
}
