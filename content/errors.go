package content

import (
	"fmt"
	"strings"
)

// FieldError is a single problem found while loading content.
type FieldError struct {
	Source  string // file path or row key
	Message string
}

func (e FieldError) Error() string {
	if e.Source == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// ValidationError collects every problem found in one load so authors can
// fix them in a single pass.
type ValidationError struct {
	Items []FieldError
}

func (e *ValidationError) Add(source, format string, args ...any) {
	e.Items = append(e.Items, FieldError{Source: source, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) HasAny() bool {
	return len(e.Items) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "content: validation failed"
	}
	var b strings.Builder
	b.WriteString("content: validation failed:")
	for _, item := range e.Items {
		b.WriteString("\n - ")
		b.WriteString(item.Error())
	}
	return b.String()
}
