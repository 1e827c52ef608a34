package graybook

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	apperrors "graybook/internal/errors"
	"graybook/pkg/contracts/domain"
)

// rowFieldCount is the number of cells a position row must carry:
// name, title, tenure code, employee class, present FTE, proposed FTE,
// present salary, proposed salary.
const rowFieldCount = 8

// aggregateMarker flags rows that repeat a person's totals; the pipeline
// recomputes totals itself, so these rows are never turned into positions.
const aggregateMarker = "Employee Total"

// Document is the extracted Gray Book: an ordered mapping of department
// identifier to faculty list, plus display names for each department.
// Document order is preserved both across departments and within each one.
type Document struct {
	DeptIDs     []string
	Departments map[string][]*domain.FacultyMember
	Names       map[string]string
}

// Parser extracts per-department faculty records from the Gray Book HTML.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger falls back to slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// ParseFile reads and extracts a Gray Book HTML file.
func (p *Parser) ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open report file", err).WithContext("path", path)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse extracts a Gray Book document from r. The whole tree is
// materialized before extraction begins; rows are processed strictly in
// document order.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to parse report HTML", err)
	}

	doc := &Document{
		Departments: make(map[string][]*domain.FacultyMember),
		Names:       make(map[string]string),
	}
	w := &walker{parser: p, doc: doc}
	w.walk(root)

	p.logger.Info("extracted report",
		slog.Int("departments", len(doc.DeptIDs)),
		slog.Int("rows_skipped", w.rowsSkipped))

	return doc, nil
}

// walker carries the extraction state while descending the HTML tree.
// currentDept is the only mutable cursor: every table row is attributed to
// the most recently seen department heading.
type walker struct {
	parser      *Parser
	doc         *Document
	currentDept string
	rowsSkipped int
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h3":
			if id := attrValue(n, "id"); id != "" {
				w.currentDept = id
				if _, seen := w.doc.Names[id]; !seen {
					w.doc.DeptIDs = append(w.doc.DeptIDs, id)
					w.doc.Names[id] = strings.TrimSpace(nodeText(n))
				}
			}
		case "table":
			w.walkTable(n)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// walkTable visits every body row of a table. Header rows inside thead are
// structural and never carry position data.
func (w *walker) walkTable(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "thead":
			return
		case "tr":
			w.processRow(rowCells(n))
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walkTable(c)
	}
}

// processRow turns one table row into a Position, either appended to the
// preceding faculty member (continuation row) or opening a new one.
func (w *walker) processRow(cells []string) {
	if w.currentDept == "" {
		return
	}
	if len(cells) < rowFieldCount {
		if len(cells) > 0 {
			w.rowsSkipped++
			w.parser.logger.Debug("skipping malformed row",
				slog.String("department", w.currentDept),
				slog.Int("cells", len(cells)))
		}
		return
	}

	name := cells[0]
	title := cells[1]
	if strings.Contains(title, aggregateMarker) {
		return
	}

	position := domain.Position{
		Title:          title,
		TenureCode:     cells[2],
		EmplClass:      cells[3],
		PresentFTE:     ParseFTE(cells[4]),
		ProposedFTE:    ParseFTE(cells[5]),
		PresentSalary:  ParseSalary(cells[6]),
		ProposedSalary: ParseSalary(cells[7]),
	}

	faculty := w.doc.Departments[w.currentDept]

	// A row with an empty name, or repeating the previous record's name,
	// continues that record rather than opening a new one.
	if len(faculty) > 0 && (name == "" || name == faculty[len(faculty)-1].Name) {
		last := faculty[len(faculty)-1]
		last.Positions = append(last.Positions, position)
		return
	}

	w.doc.Departments[w.currentDept] = append(faculty, &domain.FacultyMember{
		Name:       name,
		Department: w.currentDept,
		Positions:  []domain.Position{position},
	})
}

// rowCells collects the trimmed text of every td/th cell in a row.
func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	return cells
}

// nodeText concatenates all text nodes beneath n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// ParseSalary parses a currency string like "$123,456.78". Malformed input
// yields zero, never an error; messy source data is expected.
func ParseSalary(s string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFTE parses a full-time-equivalent fraction. Malformed input yields zero.
func ParseFTE(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
