// Package sample содержит тип значения, который публикует пример.
package sample

import (
	"fmt"
	"strings"
)

// Value — значение с двумя состояниями. Нулевое значение — Value1.
type Value uint8

const (
	Value1 Value = iota
	Value2
)

var names = map[Value]string{
	Value1: "value1",
	Value2: "value2",
}

// Parse преобразует имя вида "value2" в Value. Регистр не учитывается.
func Parse(s string) (Value, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range names {
		if n == name {
			return v, nil
		}
	}
	return Value1, fmt.Errorf("unknown sample value %q", s)
}

func (v Value) String() string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("Value(%d)", uint8(v))
}

// Set реализует flag.Value.
func (v *Value) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalText реализует encoding.TextUnmarshaler (нужен для YAML).
func (v *Value) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

// MarshalText реализует encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	if _, ok := names[v]; !ok {
		return nil, fmt.Errorf("unknown sample value %d", uint8(v))
	}
	return []byte(v.String()), nil
}
