package server

import (
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/linkshield/phishguard/internal/domain"
)

// homePage is the minimal check-a-link form. Kept server-rendered and
// dependency-free; the JSON API is the real interface.
var homePage = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>PhishGuard</title>
  <style>
    body { font-family: sans-serif; max-width: 42rem; margin: 3rem auto; padding: 0 1rem; }
    input[type=text] { width: 75%; padding: .5rem; }
    button { padding: .5rem 1rem; }
    .verdict { border: 2px solid; border-radius: 6px; padding: 1rem; margin-top: 1.5rem; }
    .phishing { border-color: #c0392b; }
    .safe { border-color: #27ae60; }
    .error { color: #c0392b; margin-top: 1.5rem; }
    .tips { background: #f4f4f4; padding: 1rem; border-radius: 6px; margin-top: 2rem; }
  </style>
</head>
<body>
  <h2>&#128270; PhishGuard</h2>
  <form method="POST">
    <input type="text" name="text" placeholder="Enter URL or text..." value="{{.Input}}" required>
    <button type="submit">Check</button>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  {{if .Analysis}}
    {{if .Phishing}}
    <div class="verdict phishing">
      <h3>&#10060; Phishing Detected</h3>
    {{else}}
    <div class="verdict safe">
      <h3>&#9989; Safe</h3>
    {{end}}
      <p><strong>Confidence:</strong> {{printf "%.1f%%" .Confidence}}</p>
      {{if .Analysis.Verdict.Reasons}}
        <p><strong>Why flagged?</strong></p>
        <ul>
          {{range .Analysis.Verdict.Reasons}}<li>{{.}}</li>{{end}}
        </ul>
      {{end}}
    </div>
  {{end}}
  <div class="tips">
    <strong>Tips:</strong> Never click suspicious links. Check for HTTPS, strange
    domains, and spelling errors.
  </div>
</body>
</html>
`))

type homeData struct {
	Input      string
	Analysis   *domain.Analysis
	Phishing   bool
	Confidence float64 // percentage for display
	Error      string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := homeData{}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			data.Input = r.PostFormValue("text")
		}
		analysis, err := s.service.Analyze(r.Context(), data.Input)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			data.Error = domain.ErrInvalidInput.Error()
		case err != nil:
			s.logger.Error("analysis failed", zap.Error(err))
			data.Error = "internal error"
		default:
			data.Analysis = analysis
			data.Phishing = analysis.Verdict.Label == domain.LabelPhishing
			data.Confidence = analysis.Verdict.Confidence * 100
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homePage.Execute(w, data); err != nil {
		s.logger.Error("template render failed", zap.Error(err))
	}
}
