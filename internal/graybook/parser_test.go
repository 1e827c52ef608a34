package graybook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graybook/internal/config"
)

const sampleReport = `
<html><body>
<h2>KP - Grainger Engineering</h2>
<h3 id="c42-d6">434 - Siebel School Comp &amp; Data Sci</h3>
<table>
<thead><tr><th>Name</th><th>Title</th><th>Tenure</th><th>Class</th>
<th>Present FTE</th><th>Proposed FTE</th><th>Present Salary</th><th>Proposed Salary</th></tr></thead>
<tbody>
<tr><td>Smith, Jane</td><td>PROF</td><td>A</td><td>AA</td><td>1</td><td>1</td><td>$200,000.00</td><td>$205,000.00</td></tr>
<tr><td></td><td>PROF EMERITUS</td><td></td><td>AA</td><td>0</td><td>0</td><td>$0.00</td><td>$0.00</td></tr>
<tr><td>Smith, Jane</td><td>DIR GRAD STUDIES</td><td></td><td>BA</td><td>0</td><td>0</td><td>$10,000.00</td><td>$10,000.00</td></tr>
<tr><td></td><td>Employee Total for All Jobs...</td><td></td><td></td><td>1</td><td>1</td><td>$210,000.00</td><td>$215,000.00</td></tr>
<tr><td>Lee, Omar</td><td>TCH ASST PROF</td><td>M</td><td>AA</td><td>1</td><td>1</td><td>$110,000.00</td><td>$112,000.00</td></tr>
<tr><td>Broken, Row</td><td>PROF</td><td>A</td><td>AA</td><td>1</td></tr>
</tbody>
</table>
<h3 id="c42-d7">415 - Electrical &amp; Computer Eng</h3>
<table>
<tbody>
<tr><td>Park, Min</td><td>ASSOC PROF</td><td>A</td><td>AA</td><td>1</td><td>1</td><td>$150,000.00</td><td>$152,000.00</td></tr>
</tbody>
</table>
</body></html>`

func TestParseDepartments(t *testing.T) {
	parser := NewParser(nil)
	doc, err := parser.Parse(strings.NewReader(sampleReport))
	require.NoError(t, err)

	assert.Equal(t, []string{"c42-d6", "c42-d7"}, doc.DeptIDs)
	assert.Equal(t, "434 - Siebel School Comp & Data Sci", doc.Names["c42-d6"])
	assert.Equal(t, "415 - Electrical & Computer Eng", doc.Names["c42-d7"])
}

func TestParseContinuationRows(t *testing.T) {
	parser := NewParser(nil)
	doc, err := parser.Parse(strings.NewReader(sampleReport))
	require.NoError(t, err)

	faculty := doc.Departments["c42-d6"]
	require.Len(t, faculty, 2, "malformed row must not create a record")

	smith := faculty[0]
	assert.Equal(t, "Smith, Jane", smith.Name)
	require.Len(t, smith.Positions, 3, "empty-name and repeated-name rows continue the record")
	assert.Equal(t, "PROF", smith.Positions[0].Title)
	assert.Equal(t, "PROF EMERITUS", smith.Positions[1].Title)
	assert.Equal(t, "DIR GRAD STUDIES", smith.Positions[2].Title)
	assert.InDelta(t, 210000.0, smith.TotalPresentSalary(), 0.01)

	lee := faculty[1]
	assert.Equal(t, "Lee, Omar", lee.Name)
	require.Len(t, lee.Positions, 1)
	assert.Equal(t, "AA", lee.Positions[0].EmplClass)
	assert.InDelta(t, 110000.0, lee.Positions[0].PresentSalary, 0.01)
}

func TestParseSkipsAggregateRows(t *testing.T) {
	parser := NewParser(nil)
	doc, err := parser.Parse(strings.NewReader(sampleReport))
	require.NoError(t, err)

	for _, f := range doc.Departments["c42-d6"] {
		for _, p := range f.Positions {
			assert.NotContains(t, p.Title, "Employee Total")
		}
	}
}

func TestFindDepartment(t *testing.T) {
	parser := NewParser(nil)
	doc, err := parser.Parse(strings.NewReader(sampleReport))
	require.NoError(t, err)

	tests := []struct {
		name    string
		sel     config.DepartmentConfig
		wantID  string
		wantErr bool
	}{
		{"by code", config.DepartmentConfig{Code: "434"}, "c42-d6", false},
		{"by name substring", config.DepartmentConfig{Name: "Siebel School"}, "c42-d6", false},
		{"second department by code", config.DepartmentConfig{Code: "415"}, "c42-d7", false},
		{"no match is fatal", config.DepartmentConfig{Code: "999"}, "", true},
		{"code must match prefix", config.DepartmentConfig{Code: "42"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, faculty, err := doc.FindDepartment(tt.sel)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.NotEmpty(t, faculty)
		})
	}
}

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"currency with separators", "$123,456.78", 123456.78},
		{"plain number", "99000", 99000},
		{"zero", "$0.00", 0},
		{"malformed recovers as zero", "n/a", 0},
		{"empty recovers as zero", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseSalary(tt.input), 0.001)
		})
	}
}

func TestParseFTE(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"whole", "1", 1.0},
		{"fraction", "0.49", 0.49},
		{"padded", " 0.75 ", 0.75},
		{"malformed recovers as zero", "-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFTE(tt.input), 0.001)
		})
	}
}
