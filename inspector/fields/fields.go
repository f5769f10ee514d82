// Package fields reads `inspect` struct tags off bird components and turns
// them into display rows for the inspector panel.
package fields

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget selects how a field is drawn.
type Widget int

const (
	Label Widget = iota
	Bar          // signed bar around zero
	Tilt         // rotated bird outline
	Skip
)

// Range is the value span a bar or tilt widget covers.
type Range struct {
	Min, Max float32
}

// Ratio returns where v falls in r, clamped to [0,1]. An empty range
// yields 0.
func (r Range) Ratio(v float32) float32 {
	if r.Max <= r.Min {
		return 0
	}
	t := (v - r.Min) / (r.Max - r.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Zero returns the ratio of 0, the origin of a signed bar.
func (r Range) Zero() float32 {
	return r.Ratio(0)
}

// Field is one component field with its display hints.
type Field struct {
	Component string
	Name      string
	Value     any
	Widget    Widget
	Range     Range
	Format    string
}

// ParseTag parses an inspect struct tag of the form
// `inspect:"widget[,min:v][,max:v][,fmt:verb]"`. Unknown or missing widgets
// become Label. The range defaults to [0,1].
func ParseTag(tag string) (Widget, Range, string) {
	rng := Range{Min: 0, Max: 1}
	if tag == "" {
		return Label, rng, ""
	}

	parts := strings.Split(tag, ",")
	var widget Widget
	switch strings.TrimSpace(parts[0]) {
	case "bar":
		widget = Bar
	case "tilt":
		widget = Tilt
	case "skip":
		widget = Skip
	default:
		widget = Label
	}

	format := ""
	for _, part := range parts[1:] {
		key, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		switch key {
		case "min":
			if f, err := strconv.ParseFloat(val, 32); err == nil {
				rng.Min = float32(f)
			}
		case "max":
			if f, err := strconv.ParseFloat(val, 32); err == nil {
				rng.Max = float32(f)
			}
		case "fmt":
			format = val
		}
	}
	return widget, rng, format
}

// Extract lists the exported, non-skipped fields of a component struct or
// pointer to one. Bar and Tilt on non-numeric fields fall back to Label.
func Extract(component any) []Field {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var out []Field
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		widget, rng, format := ParseTag(sf.Tag.Get("inspect"))
		if widget == Skip {
			continue
		}

		f := Field{
			Component: t.Name(),
			Name:      sf.Name,
			Value:     v.Field(i).Interface(),
			Widget:    widget,
			Range:     rng,
			Format:    format,
		}
		if _, ok := f.Float(); !ok {
			f.Widget = Label
		}
		out = append(out, f)
	}
	return out
}

// Float returns the field value as a float32 for numeric kinds.
func (f Field) Float() (float32, bool) {
	switch v := f.Value.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	case uint32:
		return float32(v), true
	default:
		return 0, false
	}
}

// Text formats the value with the field's verb, or %.2f for floats.
func (f Field) Text() string {
	if f.Format != "" {
		return fmt.Sprintf(f.Format, f.Value)
	}
	switch v := f.Value.(type) {
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
