package report

import (
	"encoding/csv"
	"html/template"
	"io"

	"floradesk/internal/errors"
)

// WriteCSV encodes the report as RFC 4180 CSV: one header row followed by
// the data rows.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(r.Headers); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, row := range r.Rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "failed to flush CSV output")
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; }
h1 { font-size: 20px; }
p.meta { color: #666; font-size: 12px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; font-size: 13px; }
th { background: #f5f5f5; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

// WriteHTML encodes the report as a standalone HTML document with a single
// table, suitable for download or printing.
func WriteHTML(w io.Writer, r *Report) error {
	return errors.Wrap(htmlTemplate.Execute(w, r), "failed to render HTML report")
}
