package cli

import (
	"fmt"
	"os"

	"github.com/viewls/viewls/internal/sdk"
)

// Validate validates a registry file against the schema and the semantic
// rules the schema cannot express.
func Validate(registryPath string) error {
	if registryPath == "" {
		return fmt.Errorf("no registry file given")
	}

	fmt.Printf("Validating: %s\n\n", registryPath)

	// Read file content for schema validation
	content, err := os.ReadFile(registryPath)
	if err != nil {
		return fmt.Errorf("failed to read registry file: %w", err)
	}

	// First validate with JSON Schema
	result, err := sdk.ValidateWithSchema(registryPath, content)
	if err != nil {
		return err
	}

	// If schema validation passes, run additional custom validations
	if result.Valid {
		customResult, err := sdk.Validate(registryPath)
		if err != nil {
			return err
		}
		// Merge results
		if !customResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, customResult.Errors...)
		}
	}

	if result.Valid {
		fmt.Println("✅ Registry is valid!")
		return nil
	}

	// Display errors
	fmt.Println("❌ Registry has errors:")
	for i, validationErr := range result.Errors {
		fmt.Printf("%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Printf("\nFound %d error(s)\n", len(result.Errors))

	// Return non-zero exit code
	return fmt.Errorf("validation failed")
}
