package thematic

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/matchday/pkg/store"
)

// StateKey names the rotation document inside the base path.
const StateKey = "rotation.json"

// ReadState loads the saved rotation. A missing or unreadable document
// yields a fresh rotation; losing it only means items may repeat early.
func ReadState(d *diskv.Diskv) (State, error) {
	data, ok, err := store.ReadDocument(d, StateKey)
	if err != nil {
		return State{}, fmt.Errorf("thematic: read rotation: %w", err)
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return State{}, nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("thematic: decode rotation: %w", err)
	}
	return st, nil
}

// WriteState persists the rotation.
func WriteState(d *diskv.Diskv, st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("thematic: encode rotation: %w", err)
	}
	if err := d.Write(StateKey, data); err != nil {
		return fmt.Errorf("thematic: persist rotation: %w", err)
	}
	return nil
}
