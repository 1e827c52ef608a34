package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const excludeMarker = "EXCLUDE"

func newTestReconciler(roster []string, overrides map[string]string) *Reconciler {
	return NewReconciler(roster, overrides, excludeMarker, nil)
}

func TestFuzzyMatch(t *testing.T) {
	r := newTestReconciler([]string{
		"John Doe",
		"Geoffrey Werner Challen",
		"Maria del Carmen Ruiz",
	}, nil)

	tests := []struct {
		name      string
		extracted string
		want      bool
	}{
		{"exact first name", "Doe, John", true},
		{"longer extracted first name", "Doe, Johnathan", true},
		{"middle names ignored", "Challen, Geoffrey Werner", true},
		{"shorter extracted first name", "Doe, Jo", true},
		{"prefix mismatch", "Doe, Jane", false},
		{"unknown last name", "Zed, Anonymous", false},
		{"no comma falls back to last-name-only form", "Doe", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsIncluded(tt.extracted))
		})
	}
}

func TestOverridePrecedence(t *testing.T) {
	roster := []string{"John Doe"}
	overrides := map[string]string{
		"Doe, John":      excludeMarker, // would fuzzy-match, override wins
		"Smith, Pat Lee": "Patricia Smith-Jones",
	}
	r := newTestReconciler(roster, overrides)

	t.Run("exclusion override beats a successful fuzzy match", func(t *testing.T) {
		assert.False(t, r.IsIncluded("Doe, John"))
	})

	t.Run("confirming override beats a failed fuzzy match", func(t *testing.T) {
		assert.True(t, r.IsIncluded("Smith, Pat Lee"))
	})

	t.Run("override keys are exact strings", func(t *testing.T) {
		// Not an override key, and "Smith" is not on the roster.
		assert.False(t, r.IsIncluded("Smith, Pat"))
	})
}

func TestGenerationalSuffixNormalization(t *testing.T) {
	r := newTestReconciler([]string{
		"Martin Luther King Jr",
		"Robert Downey Jr.",
		"Thurston Howell III",
	}, nil)

	tests := []struct {
		name      string
		extracted string
		want      bool
	}{
		{"Jr dropped", "King, Martin", true},
		{"dotted Jr dropped", "Downey, Robert", true},
		{"roman numeral dropped", "Howell, Thurston", true},
		{"suffix itself is not a last name", "Jr, Martin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsIncluded(tt.extracted))
		})
	}
}

func TestKnownPrecisionLimit(t *testing.T) {
	// Two roster members share a last name and a three-character first-name
	// prefix; any candidate satisfies the match, so both extracted forms are
	// accepted. This imprecision is preserved deliberately.
	r := newTestReconciler([]string{"Jonathan Chen", "Jonas Chen"}, nil)

	assert.True(t, r.IsIncluded("Chen, Jonathan"))
	assert.True(t, r.IsIncluded("Chen, Jonas"))
	assert.True(t, r.IsIncluded("Chen, Jon")) // ambiguous, still included
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	r := newTestReconciler([]string{"John Doe"}, nil)

	assert.True(t, r.IsIncluded("DOE, JOHN"))
	assert.True(t, r.IsIncluded("doe, john"))
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	content := "- John Doe\n- Geoffrey Werner Challen\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	names, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Geoffrey Werner Challen"}, names)
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
