package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Participants is a list of participant names. JSON numbers are accepted and
// kept as their decimal text, so [1, "bob"] decodes to ["1", "bob"].
type Participants []string

// UnmarshalJSON implements json.Unmarshaler
func (p *Participants) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		*p = nil
		return nil
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, err := scalarText(item)
		if err != nil {
			return fmt.Errorf("participants[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	*p = out
	return nil
}

// LenientString accepts a JSON string or number, e.g. a phone number sent unquoted
type LenientString string

// UnmarshalJSON implements json.Unmarshaler
func (s *LenientString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = ""
		return nil
	}
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	*s = LenientString(text)
	return nil
}

// scalarText returns the text of a JSON string, or the literal of a JSON number
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	if n, ok := v.(json.Number); ok {
		return n.String(), nil
	}
	return "", fmt.Errorf("expected a string or number, got %s", data)
}
