package service

import (
	"strings"

	"github.com/item-report-generator/internal/models"
)

const (
	csvHeader       = "ID,NOME,VALOR,USUARIO"
	htmlPriorityRow = ` style="font-weight:bold;"`
)

// Field values are written verbatim: the caller's data is trusted and the
// output must match the legacy documents byte for byte.

func formatCSVRow(item models.AnnotatedItem, user models.User) string {
	return strings.Join([]string{
		item.ID.String(),
		item.Name,
		models.FormatValue(item.Value),
		user.Name,
	}, ",")
}

func formatHTMLRow(item models.AnnotatedItem) string {
	style := ""
	if item.Priority {
		style = htmlPriorityRow
	}
	return "<tr" + style + "><td>" + item.ID.String() + "</td><td>" + item.Name +
		"</td><td>" + models.FormatValue(item.Value) + "</td></tr>"
}

func buildCSVReport(rows []string, total float64) string {
	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, csvHeader)
	lines = append(lines, rows...)
	lines = append(lines,
		"",
		"Total,,",
		models.FormatValue(total)+",,",
	)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func buildHTMLReport(user models.User, rows []string, total float64) string {
	lines := make([]string, 0, len(rows)+8)
	lines = append(lines,
		"<html><body>",
		"<h1>Relatório</h1>",
		"<h2>Usuário: "+user.Name+"</h2>",
		"<table>",
		"<tr><th>ID</th><th>Nome</th><th>Valor</th></tr>",
	)
	lines = append(lines, rows...)
	lines = append(lines,
		"</table>",
		"<h3>Total: "+models.FormatValue(total)+"</h3>",
		"</body></html>",
	)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
