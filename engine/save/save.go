// Package save implements JSON serialization of game state and the
// slot-based save-file store.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
)

// CurrentVersion is stamped into every save written by this build.
const CurrentVersion = 1

// playerRecord wraps the player with the persisted type tag.
type playerRecord struct {
	Type string `json:"__type"`
	*entity.Player
}

// SaveData is the parsed save document, one per slot.
type SaveData struct {
	Version int
	Player  *entity.Player
	Flags   state.Flags
	SavedAt int64 // epoch millis, stamped by the store on write
}

// saveDoc is the on-disk shape of SaveData.
type saveDoc struct {
	Version int          `json:"version"`
	Player  playerRecord `json:"player"`
	Flags   state.Flags  `json:"flags"`
	SavedAt int64        `json:"savedAt"`
}

// Marshal serializes save data to pretty-printed JSON bytes.
func Marshal(sd *SaveData) ([]byte, error) {
	doc := saveDoc{
		Version: sd.Version,
		Player:  playerRecord{Type: "Player", Player: sd.Player},
		Flags:   sd.Flags,
		SavedAt: sd.SavedAt,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses save bytes. A document that fails to parse or lacks a
// player record is rejected whole — the caller falls back to the new-game
// flow rather than adopting a partial state.
func Unmarshal(data []byte) (*SaveData, error) {
	var doc saveDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing save data: %w", err)
	}
	if doc.Player.Player == nil || doc.Player.Name == "" {
		return nil, fmt.Errorf("save data has no player record")
	}
	sd := &SaveData{
		Version: doc.Version,
		Player:  doc.Player.Player,
		Flags:   doc.Flags,
		SavedAt: doc.SavedAt,
	}
	// Ensure maps and slices are never nil after load.
	sd.Flags.EnsureMaps()
	if sd.Player.Skills == nil {
		sd.Player.Skills = []string{}
	}
	if sd.Player.EffectStatus == nil {
		sd.Player.EffectStatus = []string{}
	}
	if sd.Player.Inventory == nil {
		sd.Player.Inventory = []string{}
	}
	if sd.Player.EquippedActives == nil {
		sd.Player.EquippedActives = []string{}
	}
	if sd.Player.EquippedPassives == nil {
		sd.Player.EquippedPassives = []string{}
	}
	return sd, nil
}

// Snapshot captures the current state into a SaveData ready for the store.
func Snapshot(st *state.State) *SaveData {
	return &SaveData{
		Version: CurrentVersion,
		Player:  st.Player,
		Flags:   st.Flags,
	}
}

// Apply adopts loaded save data onto a state.
func Apply(st *state.State, sd *SaveData) {
	st.Player = sd.Player
	st.Flags = sd.Flags
}
