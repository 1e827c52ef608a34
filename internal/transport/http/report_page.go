package http

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	apierrors "graybook/internal/errors"
	"graybook/internal/parity"
)

// reportPageTemplate renders the parity comparison as horizontal bars,
// scaled against the largest group mean on the page. No scripts; the page
// is static enough to screenshot headlessly.
var reportPageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Department}} - Salary Parity</title>
<style>
  body { font-family: sans-serif; margin: 2rem; max-width: 60rem; }
  h1 { font-size: 1.4rem; }
  h2 { font-size: 1.1rem; margin-top: 2rem; text-transform: capitalize; }
  .bar { height: 1.6rem; margin: 0.2rem 0; color: #fff; padding: 0.2rem 0.5rem;
         box-sizing: border-box; white-space: nowrap; }
  .teaching { background: #2a7ae2; }
  .tenure_track { background: #e2722a; }
  .meta { color: #555; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>{{.Department}} - Teaching vs Tenure-Track Salary Parity</h1>
<p class="meta">{{.Summary.TotalFaculty}} faculty; {{.Summary.TeachingTrack}} teaching track,
{{.Summary.TenureTrack}} tenure track.</p>
{{range .Ranks}}
<h2 id="rank-{{.Rank}}">{{.Rank}}</h2>
{{range .Bars}}
<div class="bar {{.Track}}" style="width: {{.WidthPct}}%">{{.Label}}</div>
{{end}}
{{end}}
</body>
</html>`))

type reportBar struct {
	Track    string
	Label    string
	WidthPct float64
}

type reportRank struct {
	Rank string
	Bars []reportBar
}

// GetReportPage renders the HTML parity chart.
func (h *Handler) GetReportPage(w http.ResponseWriter, r *http.Request) {
	if h.result == nil {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Department string
		Summary    interface{}
		Ranks      []reportRank
	}{
		Department: h.result.Snapshot.Department,
		Summary:    h.result.Snapshot.Summary,
		Ranks:      buildReportRanks(h.result.Analysis),
	}

	// Render to a buffer first so a template failure can still produce a
	// proper error response instead of a half-written page.
	var buf bytes.Buffer
	if err := reportPageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render report page", slog.String("error", err.Error()))
		h.renderError(w, r, apierrors.InternalServerError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func buildReportRanks(analysis *parity.Analysis) []reportRank {
	var maxMean float64
	for _, g := range analysis.Groups {
		if g.Stats.Mean > maxMean {
			maxMean = g.Stats.Mean
		}
	}
	if maxMean == 0 {
		return nil
	}

	byRank := make(map[string]*reportRank)
	var order []string
	for _, g := range analysis.Groups {
		rank := string(g.Rank)
		entry, ok := byRank[rank]
		if !ok {
			entry = &reportRank{Rank: rank}
			byRank[rank] = entry
			order = append(order, rank)
		}
		entry.Bars = append(entry.Bars, reportBar{
			Track:    string(g.Track),
			Label:    formatBarLabel(g),
			WidthPct: g.Stats.Mean / maxMean * 100,
		})
	}

	ranks := make([]reportRank, 0, len(order))
	for _, rank := range order {
		ranks = append(ranks, *byRank[rank])
	}
	return ranks
}

func formatBarLabel(g parity.GroupSummary) string {
	return fmt.Sprintf("%s: mean $%s (n=%d)", g.Track, formatAmount(g.Stats.Mean), g.Stats.Count)
}

// formatAmount renders whole dollars with thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatInt(int64(v+0.5), 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
