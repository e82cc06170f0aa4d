package plugin

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// forEachObjectKey walks a raw JSON object and calls fn once per key, in
// declaration order, with the key's raw value. encoding/json maps lose
// declaration order, and both the dependency list and the feature table
// are contractually iterated in the order their file declares them.
func forEachObjectKey(raw []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("reading value for key %q: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading object end: %w", err)
	}
	return nil
}
