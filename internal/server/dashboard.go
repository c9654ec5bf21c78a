package server

import (
	"html/template"
	"net/http"

	"github.com/danikagupta/zoomsize/internal/collector"
	"github.com/danikagupta/zoomsize/internal/logging"
	"github.com/danikagupta/zoomsize/internal/report"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Zoom Size</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-top: 0.5rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
form { display: inline; margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>Zoom Size</h1>
<form method="post" action="/refresh/token"><button type="submit">Refresh Token</button></form>
<form method="post" action="/refresh/recordings"><button type="submit">Refresh Recordings</button></form>

<h2>Summary</h2>
<p>Total recordings: {{.Summary.TotalRecordings}}, total size: {{printf "%.1f" .Summary.TotalGB}} GB</p>
<table>
<tr><th>user_name</th><th>MB</th></tr>
{{range .Summary.PerUser}}<tr><td>{{.UserName}}</td><td>{{printf "%.0f" .MB}}</td></tr>
{{end}}</table>

<h2>Details</h2>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

type dashboardData struct {
	Summary report.Summary
	Columns []string
	Rows    [][]string
}

func (s *Server) renderDashboard(w http.ResponseWriter, col collector.Collection) {
	data := dashboardData{
		Summary: report.Summarize(col),
		Columns: report.DetailColumns,
		Rows:    report.DetailRows(col),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		s.logger.Error("rendering dashboard failed", logging.Err(err))
	}
}
