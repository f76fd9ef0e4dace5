package sprite

import (
	"fmt"
	"strings"
)

// ConfigError reports unusable builder configuration, for example an output
// file with an extension no encoder exists for.
type ConfigError struct {
	Option string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bad configuration %q = %q: %s", e.Option, e.Value, e.Reason)
}

// OptionError reports a bad key or value in a sprite reference option
// string. The registration it occurred in is aborted as a whole.
type OptionError struct {
	Key     string
	Value   string
	Reason  string
	Allowed []string
}

func (e *OptionError) Error() string {
	msg := fmt.Sprintf("invalid sprite option %q: %s", e.Key, e.Reason)
	if len(e.Allowed) > 0 {
		msg += " (allowed: " + strings.Join(e.Allowed, ", ") + ")"
	}
	return msg
}

// FormatError reports an image reference with an extension we cannot decode.
// It is raised before any decode attempt.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported image format: %s", e.Path)
}

// LoadError reports a failed image decode, annotated with the stylesheet
// line the reference came from.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load image %s (line %d): %v", e.Path, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// EncodeError reports a failure to serialize or write the composite canvas.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("unable to write sprite image %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// ToolError reports a failed external optimizer run.
type ToolError struct {
	Cmd    string
	Output []byte
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("optimizer %q failed: %v", e.Cmd, e.Err)
	if len(e.Output) > 0 {
		msg += ": " + strings.TrimSpace(string(e.Output))
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }
