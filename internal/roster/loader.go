package roster

import (
	"os"

	"gopkg.in/yaml.v2"

	apperrors "graybook/internal/errors"
)

// LoadRoster reads a YAML roster file: a flat list of canonical
// "First [Middle] Last" names.
func LoadRoster(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read roster file", err).WithContext("path", path)
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, apperrors.NewParsingError("failed to parse roster file", err).WithContext("path", path)
	}
	return names, nil
}
