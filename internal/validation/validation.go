// Package validation implements the declarative field-rule checker used by
// every write endpoint. Validate is a pure function of its rules and input:
// it never touches the datastore and reports every violated rule, not just
// the first.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"privatemarkets/internal/uuid"
)

// Type names the shape a field value must have.
type Type string

const (
	TypeString Type = "string"
	TypeNumber Type = "number"
	TypeEmail  Type = "email"
	TypeDate   Type = "date"
	TypeUUID   Type = "uuid"
)

// Rule declares the constraints on a single input field. Min and Max only
// apply to TypeNumber. Enum is checked regardless of Type.
type Rule struct {
	Field    string
	Required bool
	Type     Type
	Min      *float64
	Max      *float64
	Enum     []string
}

// Bound returns a pointer to v, for use in Rule.Min and Rule.Max.
func Bound(v float64) *float64 {
	return &v
}

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// dateLayouts are tried in order when checking TypeDate values.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// Validate checks input against rules in order and returns one message per
// violated check, in rule order. A nil result means the input is accepted.
func Validate(rules []Rule, input map[string]interface{}) []string {
	var errs []string

	for _, rule := range rules {
		value, present := input[rule.Field]
		if !present || isEmpty(value) {
			if rule.Required {
				errs = append(errs, rule.Field+" is required")
			}
			continue
		}

		switch rule.Type {
		case TypeString:
			if _, ok := value.(string); !ok {
				errs = append(errs, rule.Field+" must be a string")
			}
		case TypeNumber:
			num, ok := ToNumber(value)
			switch {
			case !ok:
				errs = append(errs, rule.Field+" must be a number")
			case rule.Min != nil && num < *rule.Min:
				errs = append(errs, fmt.Sprintf("%s must be at least %s", rule.Field, formatNumber(*rule.Min)))
			case rule.Max != nil && num > *rule.Max:
				errs = append(errs, fmt.Sprintf("%s must be at most %s", rule.Field, formatNumber(*rule.Max)))
			}
		case TypeEmail:
			if s, ok := value.(string); !ok || !emailRegex.MatchString(s) {
				errs = append(errs, rule.Field+" must be a valid email address")
			}
		case TypeDate:
			if s, ok := value.(string); !ok || !isDate(s) {
				errs = append(errs, rule.Field+" must be a valid date (YYYY-MM-DD)")
			}
		case TypeUUID:
			if s, ok := value.(string); !ok || !uuid.IsCanonical(s) {
				errs = append(errs, rule.Field+" must be a valid UUID")
			}
		}

		if len(rule.Enum) > 0 && !inEnum(value, rule.Enum) {
			errs = append(errs, fmt.Sprintf("%s must be one of: %s", rule.Field, strings.Join(rule.Enum, ", ")))
		}
	}

	return errs
}

// ToNumber coerces a decoded JSON value to a finite float64. JSON numbers
// and numeric strings are accepted; everything else is not a number.
func ToNumber(value interface{}) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func isDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a value accepted by TypeDate.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func inEnum(value interface{}, enum []string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, allowed := range enum {
		if s == allowed {
			return true
		}
	}
	return false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
