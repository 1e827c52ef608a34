package graybook

import (
	"strings"

	"graybook/internal/config"
	apperrors "graybook/internal/errors"
	"graybook/pkg/contracts/domain"
)

// FindDepartment resolves the target department against the extracted
// document. A department matches when its display name starts with the
// configured code ("434 - ...") or contains the configured name. No match
// is a configuration error: the rest of the pipeline cannot proceed without
// a resolved department, so callers treat it as fatal.
func (d *Document) FindDepartment(sel config.DepartmentConfig) (string, []*domain.FacultyMember, error) {
	for _, id := range d.DeptIDs {
		display := d.Names[id]
		if sel.Code != "" && strings.HasPrefix(display, sel.Code+" -") {
			return id, d.Departments[id], nil
		}
		if sel.Name != "" && strings.Contains(display, sel.Name) {
			return id, d.Departments[id], nil
		}
	}
	return "", nil, apperrors.NewNotFoundError("department not found in report", nil).
		WithContext("selector", sel.Selector())
}

// DepartmentName returns the display name recorded for a department ID.
func (d *Document) DepartmentName(id string) string {
	return d.Names[id]
}
