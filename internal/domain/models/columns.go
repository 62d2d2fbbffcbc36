package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded list column. A nil list means the field was
// never supplied; an empty non-nil list means it was supplied empty. The two
// are scored differently, so Scan must keep them apart.
type StringList []string

func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
	case []byte:
		*l = decodeStringList(v)
	case string:
		*l = decodeStringList([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}

// decodeStringList treats malformed payloads as an absent field rather than
// failing the whole row scan.
func decodeStringList(raw []byte) StringList {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func (StringList) GormDataType() string {
	return "json"
}

// ConditionMap is a JSON-encoded mapping column used for rule conditions.
type ConditionMap map[string]any

func (m ConditionMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *ConditionMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
	case []byte:
		*m = decodeConditionMap(v)
	case string:
		*m = decodeConditionMap([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into ConditionMap", src)
	}
	return nil
}

func decodeConditionMap(raw []byte) ConditionMap {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func (ConditionMap) GormDataType() string {
	return "json"
}
