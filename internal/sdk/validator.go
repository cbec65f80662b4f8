package sdk

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of registry validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate runs the semantic checks the JSON Schema cannot express. Partial
// metadata is legal by design: a styleable owned by an unknown component or
// an unresolvable ancestor is not an error.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("registry file not found: %s", path)
	}

	// Try to parse the registry
	rf, err := loadRaw(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse registry: %v", err),
		})
		return result, nil
	}

	// Duplicate qualified names would collapse silently on load
	seen := map[string]string{}
	for _, c := range rf.Components {
		qualified := c.Qualified
		if qualified == "" {
			qualified = c.Name
		}
		if qualified == "" {
			continue
		}
		if prev, dup := seen[qualified]; dup {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "components/" + c.Name,
				Message: fmt.Sprintf("Qualified name %q is already declared by %q", qualified, prev),
			})
			continue
		}
		seen[qualified] = c.Name
	}

	// A component must not list itself as an ancestor
	for _, c := range rf.Components {
		for _, a := range c.Extends {
			if a == c.Qualified || a == c.Name {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   "components/" + c.Name,
					Message: "Component lists itself in extends",
				})
			}
		}
	}

	// Styleable entries must carry a usable local name
	for owner, refs := range rf.Styleables {
		for _, ref := range refs {
			parsed := parseRef(ref, rf.Namespace)
			if strings.TrimSpace(parsed.Entry) == "" {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   "styleables/" + owner,
					Message: fmt.Sprintf("Attribute entry %q has an empty local name", ref),
				})
			}
		}
	}

	// Attrs with an empty value list never produce a suggestion
	for attr, entry := range rf.Attrs {
		if len(entry.Values) == 0 {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "attrs/" + attr,
				Message: "Value list is empty",
			})
		}
	}

	return result, nil
}
