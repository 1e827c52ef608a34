package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunListDepartments(t *testing.T) {
	report := `
<html><body>
<h3 id="c42-d6">434 - Siebel School Comp &amp; Data Sci</h3>
<table><tbody>
<tr><td>Challen, Geoffrey Werner</td><td>TCH PROF</td><td>M</td><td>AA</td><td>1</td><td>1</td><td>$175,424.00</td><td>$179,999.60</td></tr>
</tbody></table>
<h3 id="c42-d9">498 - Mathematics</h3>
<table><tbody>
<tr><td>Euler, Leonhard</td><td>PROF</td><td>A</td><td>AA</td><td>1</td><td>1</td><td>$210,000.00</td><td>$212,000.00</td></tr>
</tbody></table>
</body></html>`

	path := filepath.Join(t.TempDir(), "graybook.html")
	require.NoError(t, os.WriteFile(path, []byte(report), 0644))

	var buf bytes.Buffer
	require.NoError(t, runListDepartments(&buf, path, nil))

	out := buf.String()
	assert.Contains(t, out, "2 departments:")
	assert.Contains(t, out, "434 - Siebel School Comp & Data Sci")
	assert.Contains(t, out, "498 - Mathematics")
}

func TestRunListDepartmentsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runListDepartments(&buf, filepath.Join(t.TempDir(), "absent.html"), nil)
	assert.Error(t, err)
}
