package sprite

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Options is the fully merged attribute record of one sprite reference:
// fixed defaults overlaid with whatever the option string carried.
type Options struct {
	Width        int
	Height       int
	Align        Align
	VAlign       VAlign
	Resize       bool
	Repeat       Repeat
	LimitRepeatX int
	LimitRepeatY int
	TotalWidth   int
	TotalHeight  int
	PadWidth     int
	PadHeight    int
}

const (
	// LimitRepeatX 0 means "tile across the whole canvas".
	defaultLimitRepeatY = 300
)

func defaultOptions() Options {
	return Options{
		Align:        AlignBlock,
		VAlign:       VAlignMiddle,
		Repeat:       RepeatNo,
		LimitRepeatY: defaultLimitRepeatY,
	}
}

// parseOptions overlays clauses of a raw "key1: value1; key2: value2"
// option string onto the defaults. Keys are lower-cased and trimmed, empty
// clauses skipped, later clauses win. Any unknown key or unparsable value
// aborts with an OptionError.
func parseOptions(raw string) (Options, error) {
	opts := defaultOptions()

	for clause := range strings.SplitSeq(raw, ";") {
		clause = strings.TrimSpace(clause)
		if len(clause) == 0 {
			continue
		}
		key, value, _ := strings.Cut(clause, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case "width":
			opts.Width, err = parseNumber(key, value)
		case "height":
			opts.Height, err = parseNumber(key, value)
		case "limit-repeat-x":
			opts.LimitRepeatX, err = parseNumber(key, value)
		case "limit-repeat-y":
			opts.LimitRepeatY, err = parseNumber(key, value)
		case "totalwidth":
			opts.TotalWidth, err = parseNumber(key, value)
		case "totalheight":
			opts.TotalHeight, err = parseNumber(key, value)
		case "padwidth":
			opts.PadWidth, err = parseNumber(key, value)
		case "padheight":
			opts.PadHeight, err = parseNumber(key, value)
		case "resize":
			opts.Resize = parseBool(value)
		case "align":
			if opts.Align, err = ParseAlign(value); err != nil {
				err = &OptionError{Key: key, Value: value, Reason: "not an allowed value", Allowed: AlignNames()}
			}
		case "valign":
			if opts.VAlign, err = ParseVAlign(value); err != nil {
				err = &OptionError{Key: key, Value: value, Reason: "not an allowed value", Allowed: VAlignNames()}
			}
		case "repeat":
			if opts.Repeat, err = ParseRepeat(value); err != nil {
				err = &OptionError{Key: key, Value: value, Reason: "not an allowed value", Allowed: RepeatNames()}
			}
		default:
			err = &OptionError{Key: key, Value: value, Reason: "unknown key"}
		}
		if err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func parseNumber(key, value string) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &OptionError{Key: key, Value: value, Reason: "not a number"}
	}
	return int(f), nil
}

// parseBool maps "false", "0" and the empty string to false, anything else
// to true.
func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "", "false", "0":
		return false
	}
	return true
}

// signature builds the canonical dedup key over the merged record: all
// attribute keys, filename included, sorted and joined as "key=value" pairs.
func (o Options) signature(filename string) string {
	attrs := map[string]string{
		"filename":       filename,
		"width":          strconv.Itoa(o.Width),
		"height":         strconv.Itoa(o.Height),
		"align":          o.Align.String(),
		"valign":         o.VAlign.String(),
		"resize":         strconv.FormatBool(o.Resize),
		"repeat":         o.Repeat.String(),
		"limit-repeat-x": strconv.Itoa(o.LimitRepeatX),
		"limit-repeat-y": strconv.Itoa(o.LimitRepeatY),
		"totalwidth":     strconv.Itoa(o.TotalWidth),
		"totalheight":    strconv.Itoa(o.TotalHeight),
		"padwidth":       strconv.Itoa(o.PadWidth),
		"padheight":      strconv.Itoa(o.PadHeight),
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, attrs[k]))
	}
	return strings.Join(parts, ";")
}
