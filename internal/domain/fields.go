package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

var jsonNull = []byte("null")

// Interests accepts either a JSON array of strings or a single string.
type Interests struct {
	Values []string
	Scalar string
	isList bool
}

func (i *Interests) UnmarshalJSON(data []byte) error {
	*i = Interests{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}
	if data[0] == '[' {
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		i.isList = true
		for _, v := range raw {
			i.Values = append(i.Values, stringify(v))
		}
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if isFalsy(v) {
		return nil
	}
	i.Scalar = stringify(v)
	return nil
}

func (i Interests) MarshalJSON() ([]byte, error) {
	if i.isList {
		return json.Marshal(i.Values)
	}
	if i.Scalar == "" {
		return jsonNull, nil
	}
	return json.Marshal(i.Scalar)
}

// InterestsList builds list-form interests
func InterestsList(values ...string) Interests {
	return Interests{Values: values, isList: true}
}

// InterestsScalar builds single-value interests
func InterestsScalar(value string) Interests {
	return Interests{Scalar: value}
}

// String joins list values with ", ". Empty when nothing was given.
func (i Interests) String() string {
	if i.isList {
		return strings.Join(i.Values, ", ")
	}
	return i.Scalar
}

// FlexibleString accepts any JSON scalar, keeping its textual form.
// Falsy values (false, numeric zero) are treated as empty.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*f = ""
		return nil
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if isFalsy(v) {
		*f = ""
		return nil
	}
	*f = FlexibleString(stringify(v))
	return nil
}

// FileURLs holds links to already-uploaded files.
// Only a JSON array counts; any other value means no files.
type FileURLs []string

func (u *FileURLs) UnmarshalJSON(data []byte) error {
	*u = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FileURLs, 0, len(raw))
	for _, v := range raw {
		out = append(out, stringify(v))
	}
	*u = out
	return nil
}

// isFalsy reports the JSON values a form treats as "not given"
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	case json.Number:
		fv, err := t.Float64()
		return err == nil && fv == 0
	default:
		return false
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool, float64:
		b, _ := json.Marshal(t)
		return string(b)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
