package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// AttributesVersion is the current layout of Attributes.
const AttributesVersion = 1

// ValueKind declares which payload field of a Value is populated.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "bool"
	KindList   ValueKind = "list"
)

// Value is a tagged attribute value. Exactly one payload matches Kind.
type Value struct {
	Kind   ValueKind `json:"kind"`
	String *string   `json:"string,omitempty"`
	Number *float64  `json:"number,omitempty"`
	Bool   *bool     `json:"bool,omitempty"`
	List   []string  `json:"list,omitempty"`
}

func StringValue(s string) Value { return Value{Kind: KindString, String: &s} }

func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: &n} }

func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: &b} }

func ListValue(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{Kind: KindList, List: items}
}

// Validate checks that the populated payload matches the declared kind.
func (v Value) Validate() error {
	set := 0
	if v.String != nil {
		set++
	}
	if v.Number != nil {
		set++
	}
	if v.Bool != nil {
		set++
	}
	if v.List != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("value of kind %q must carry exactly one payload", v.Kind)
	}
	switch v.Kind {
	case KindString:
		if v.String == nil {
			return fmt.Errorf("value of kind string has no string payload")
		}
	case KindNumber:
		if v.Number == nil {
			return fmt.Errorf("value of kind number has no number payload")
		}
	case KindBool:
		if v.Bool == nil {
			return fmt.Errorf("value of kind bool has no bool payload")
		}
	case KindList:
		if v.List == nil {
			return fmt.Errorf("value of kind list has no list payload")
		}
	default:
		return fmt.Errorf("unknown value kind %q", v.Kind)
	}
	return nil
}

// Attributes is a versioned, schema-less map of typed values. Used for role
// permissions, guest preferences and task checklists.
type Attributes struct {
	Version int              `json:"version"`
	Values  map[string]Value `json:"values"`
}

// NewAttributes returns an empty map at the current version.
func NewAttributes() Attributes {
	return Attributes{Version: AttributesVersion, Values: map[string]Value{}}
}

func (a Attributes) Validate() error {
	if a.Version < 0 || a.Version > AttributesVersion {
		return fmt.Errorf("unsupported attributes version %d", a.Version)
	}
	for key, v := range a.Values {
		if key == "" {
			return fmt.Errorf("attribute keys must not be empty")
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
	}
	return nil
}

func (a Attributes) Get(key string) (Value, bool) {
	v, ok := a.Values[key]
	return v, ok
}

// Flag returns a bool attribute; missing or non-bool keys read as false.
func (a Attributes) Flag(key string) bool {
	v, ok := a.Values[key]
	if !ok || v.Kind != KindBool || v.Bool == nil {
		return false
	}
	return *v.Bool
}

func (a Attributes) Value() (driver.Value, error) {
	if a.Version == 0 {
		a.Version = AttributesVersion
	}
	if a.Values == nil {
		a.Values = map[string]Value{}
	}
	return json.Marshal(a)
}

func (a *Attributes) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = NewAttributes()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Attributes", src)
	}
	var out Attributes
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if out.Values == nil {
		out.Values = map[string]Value{}
	}
	*a = out
	return nil
}
