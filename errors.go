package goentity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goentity/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNoAttributes        = "no_attributes"
	CodeBlankAttribute      = "blank_attribute"
	CodeAsWithMultiple      = "as_with_multiple_attributes"
	CodeComputeWithMultiple = "compute_with_multiple_attributes"
	CodeNilEntity           = "nil_entity"
)

// Sentinel errors for broad classification.
var (
	ErrConfiguration = errors.New("goentity: configuration error")
	ErrConstruction  = errors.New("goentity: construction error")
)

// ConfigurationError reports an invalid exposure declaration. It is returned at
// declaration time and the registry is left untouched.
type ConfigurationError struct {
	Entity     string   // Name of the entity being declared.
	Attributes []string // Attribute names passed to the failing declaration.
	Code       string   // One of the codes listed above.
	Message    string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "goentity: %s", e.Code)
	if e.Entity != "" {
		fmt.Fprintf(b, " (entity=%s)", e.Entity)
	}
	if len(e.Attributes) > 0 {
		fmt.Fprintf(b, " [%s]", strings.Join(e.Attributes, ", "))
	}
	if e.Message != "" {
		fmt.Fprintf(b, ": %s", e.Message)
	}
	return b.String()
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ConstructionError reports a representation that could not be built.
type ConstructionError struct {
	Code    string
	Message string
}

func (e *ConstructionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return "goentity: " + e.Code
	}
	return fmt.Sprintf("goentity: %s: %s", e.Code, e.Message)
}

// Is matches ErrConstruction.
func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

func configError(entity string, names []string, code string) *ConfigurationError {
	return &ConfigurationError{
		Entity:     entity,
		Attributes: append([]string(nil), names...),
		Code:       code,
		Message:    i18n.T(code, map[string]string{"entity": entity}),
	}
}

// AsConfigurationError extracts a ConfigurationError using errors.As internally.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	if err == nil {
		return nil, false
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func msg(code string) string { return i18n.T(code, nil) }
