// Package toolutil provides shared helpers for go_candidates tool handlers
// and the one-shot importer.
package toolutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoSubmissions is returned when input holds no submission objects.
var ErrNoSubmissions = errors.New("no submissions in input")

// DecodeSubmissions decodes collector output: a single submission object, an
// array of them, or an object wrapping the array under "profiles".
// Array items that are not objects decode to empty submissions, which the
// pipeline rejects one by one.
func DecodeSubmissions(data []byte) ([]map[string]any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrNoSubmissions
	}

	switch data[0] {
	case '[':
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode submissions: %w", err)
		}
		return fromAny(items)
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		if wrapped, ok := obj["profiles"].([]any); ok && len(obj) == 1 {
			return fromAny(wrapped)
		}
		return []map[string]any{obj}, nil
	}
	return nil, fmt.Errorf("decode submissions: expected JSON object or array, got %q", data[0])
}

// ReadSubmissionsFile reads and decodes a submissions file.
func ReadSubmissionsFile(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeSubmissions(data)
}

func fromAny(items []any) ([]map[string]any, error) {
	subs := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		subs = append(subs, m)
	}
	return nonEmpty(subs)
}

func nonEmpty(subs []map[string]any) ([]map[string]any, error) {
	if len(subs) == 0 {
		return nil, ErrNoSubmissions
	}
	return subs, nil
}
