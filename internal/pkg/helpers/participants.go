package helpers

import (
	"encoding/json"
	"fmt"
)

// EncodeParticipants serializes a chat participant list for the JSONB column
func EncodeParticipants(participants []string) ([]byte, error) {
	if participants == nil {
		participants = []string{}
	}
	raw, err := json.Marshal(participants)
	if err != nil {
		return nil, fmt.Errorf("failed to encode participants: %w", err)
	}
	return raw, nil
}

// DecodeParticipants is the inverse of EncodeParticipants. An empty column decodes to an empty list.
func DecodeParticipants(raw []byte) ([]string, error) {
	participants := []string{}
	if len(raw) == 0 {
		return participants, nil
	}
	if err := json.Unmarshal(raw, &participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	if participants == nil {
		participants = []string{}
	}
	return participants, nil
}

// AppendParticipant adds name unless it is already listed
func AppendParticipant(participants []string, name string) ([]string, bool) {
	for _, p := range participants {
		if p == name {
			return participants, false
		}
	}
	return append(participants, name), true
}
