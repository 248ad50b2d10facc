package layout

import "fmt"

// ConfigurationError reports a widget tree that no layout pass can
// interpret: a container mixing grid and pack directives, a managed
// child without a directive, and similar contradictions.
type ConfigurationError struct {
	WidgetID string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("layout configuration: widget %q: %s", e.WidgetID, e.Reason)
}

// ResourceLimitError reports an input that would exceed one of the
// engine's configured bounds (grid extent, nesting depth).
type ResourceLimitError struct {
	WidgetID string
	Limit    string
	Value    int
	Max      int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("layout resource limit: widget %q: %s %d exceeds maximum %d",
		e.WidgetID, e.Limit, e.Value, e.Max)
}

// OracleError reports an intrinsic-size oracle that failed or returned
// a nonsense size for a widget.
type OracleError struct {
	WidgetID string
	Err      error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("intrinsic size of widget %q: %v", e.WidgetID, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}
