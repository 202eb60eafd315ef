package datasets

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Validate checks the manifest. Absent required datasets are fatal,
// unknown kinds and unexpected file extensions produce warnings.
// File existence is checked by the loader.
func (m *Manifest) Validate() error {
	if len(m.Files) == 0 {
		return fmt.Errorf("no dataset files specified in manifest")
	}

	var missing []string
	for _, k := range Kinds {
		if k.Optional() {
			continue
		}
		if strings.TrimSpace(m.Files[k]) == "" {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required datasets are not specified: %s",
			strings.Join(missing, ", "))
	}

	for k, f := range m.Files {
		if !slices.Contains(Kinds, k) {
			m.Warnings = append(m.Warnings, ValidationWarning{
				Kind:       k,
				Message:    fmt.Sprintf("unknown dataset kind '%s'", k),
				Suggestion: "Remove the entry or use one of: " + kindList(),
			})
			continue
		}
		ext := strings.ToLower(filepath.Ext(f))
		if f != "" && ext != ".xlsx" {
			m.Warnings = append(m.Warnings, ValidationWarning{
				Kind:    k,
				Message: fmt.Sprintf("file '%s' does not look like an xlsx spreadsheet", f),
				Suggestion: "Convert the dataset to .xlsx, " +
					"only the first worksheet is read",
			})
		}
	}
	if _, ok := m.Files[Sidebar]; !ok {
		m.Warnings = append(m.Warnings, ValidationWarning{
			Kind:       Sidebar,
			Message:    "sidebar dataset is not specified",
			Suggestion: "Built-in lists of years and departments will be used",
		})
	}
	slices.SortFunc(m.Warnings, func(a, b ValidationWarning) int {
		return strings.Compare(string(a.Kind), string(b.Kind))
	})
	return nil
}

func kindList() string {
	res := make([]string, len(Kinds))
	for i, v := range Kinds {
		res[i] = string(v)
	}
	return strings.Join(res, ", ")
}
