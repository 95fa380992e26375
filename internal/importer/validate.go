package importer

import (
	"fmt"

	"github.com/mbaranski/scrumline/internal/domain"
)

// ValidateBacklogSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateBacklogSchema(schema *BacklogSchema) []error {
	var errs []error

	if schema.Project.Key == "" {
		errs = append(errs, fmt.Errorf("project.key is required"))
	}
	if schema.Project.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}

	for ei, epic := range schema.Epics {
		if epic.Title == "" {
			errs = append(errs, fmt.Errorf("epics[%d].title is required", ei))
		}
		for fi, feature := range epic.Features {
			if feature.Title == "" {
				errs = append(errs, fmt.Errorf("epics[%d].features[%d].title is required", ei, fi))
			}
			for si, story := range feature.Stories {
				if story.Title == "" {
					errs = append(errs, fmt.Errorf("epics[%d].features[%d].stories[%d].title is required", ei, fi, si))
				}
				for ii, item := range story.Items {
					path := fmt.Sprintf("epics[%d].features[%d].stories[%d].items[%d]", ei, fi, si, ii)
					errs = append(errs, validateLeafItem(path, item)...)
				}
			}
		}
	}

	return errs
}

func validateLeafItem(path string, item LeafItemImport) []error {
	var errs []error

	if item.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", path))
	}
	if item.Type != "" && item.Type != string(domain.TypeTask) && item.Type != string(domain.TypeBug) {
		errs = append(errs, fmt.Errorf("%s.type: %q is not a leaf type (task or bug)", path, item.Type))
	}
	if item.Status != "" && !domain.ValidItemStatuses[item.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid status %q", path, item.Status))
	}
	if item.Estimate != nil && *item.Estimate < 0 {
		errs = append(errs, fmt.Errorf("%s.estimate must be non-negative", path))
	}
	if item.ActualHours != nil && *item.ActualHours < 0 {
		errs = append(errs, fmt.Errorf("%s.actual_hours must be non-negative", path))
	}

	return errs
}
