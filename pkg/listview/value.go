package listview

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
)

// Kind tags the scalar carried by a Value.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindTime
)

// Value is a comparable scalar extracted from a record by an Accessor.
type Value struct {
	kind Kind
	text string
	num  decimal.Decimal
	at   time.Time
}

// Empty returns a value that sorts before every non-empty value and never matches a search.
func Empty() Value {
	return Value{}
}

// Text wraps a string field.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// OptionalText wraps a nullable string column; nil becomes Empty.
func OptionalText(s *string) Value {
	if s == nil {
		return Empty()
	}
	return Text(*s)
}

// Number wraps a floating point field. NaN and infinities become Empty.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Empty()
	}
	return Value{kind: KindNumber, num: decimal.NewFromFloat(f)}
}

// Int wraps an integer field.
func Int(i int) Value {
	return Value{kind: KindNumber, num: decimal.NewFromInt(int64(i))}
}

// Decimal wraps a monetary field.
func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// Time wraps a timestamp; the zero time is treated as Empty.
func Time(t time.Time) Value {
	if t.IsZero() {
		return Empty()
	}
	return Value{kind: KindTime, at: t}
}

// OptionalTime wraps a nullable timestamp column.
func OptionalTime(t *time.Time) Value {
	if t == nil {
		return Empty()
	}
	return Time(*t)
}

// Kind reports the scalar kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value as searchable text.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num.String()
	case KindTime:
		return v.at.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

// compare orders a before b (-1), equal (0) or after (+1).
// Empty sorts first; mixed kinds fall back to kind order.
func compare(a, b Value, coll *collate.Collator) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindText:
		if coll != nil {
			return coll.CompareString(a.text, b.text)
		}
		return strings.Compare(a.text, b.text)
	case KindNumber:
		return a.num.Cmp(b.num)
	case KindTime:
		return a.at.Compare(b.at)
	default:
		return 0
	}
}
