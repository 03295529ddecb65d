package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultMaxSlots is the number of independent save slots.
const DefaultMaxSlots = 3

// SlotInfo describes one save slot for menu display.
type SlotInfo struct {
	Slot    int
	Exists  bool
	Name    string
	Level   int
	SavedAt int64
}

// Store reads and writes save slots under a directory. Disk failures are
// reported as errors at this boundary only; they never escape as panics.
type Store struct {
	Dir      string
	MaxSlots int
}

// NewStore creates a slot store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, MaxSlots: DefaultMaxSlots}
}

// SlotPath returns the file path for a slot number.
func (s *Store) SlotPath(slot int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("slot%d.json", slot))
}

// ValidSlot reports whether the slot number is in range.
func (s *Store) ValidSlot(slot int) bool {
	return slot >= 1 && slot <= s.MaxSlots
}

// Save stamps SavedAt and writes the slot file, creating the directory if
// needed.
func (s *Store) Save(slot int, sd *SaveData) error {
	if !s.ValidSlot(slot) {
		return fmt.Errorf("slot %d out of range 1..%d", slot, s.MaxSlots)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	sd.SavedAt = time.Now().UnixMilli()
	data, err := Marshal(sd)
	if err != nil {
		return fmt.Errorf("encoding save data: %w", err)
	}
	if err := os.WriteFile(s.SlotPath(slot), data, 0o644); err != nil {
		return fmt.Errorf("writing slot %d: %w", slot, err)
	}
	return nil
}

// Load reads and parses one slot. Missing or corrupt files are errors; the
// caller decides whether to fall back to a new game.
func (s *Store) Load(slot int) (*SaveData, error) {
	if !s.ValidSlot(slot) {
		return nil, fmt.Errorf("slot %d out of range 1..%d", slot, s.MaxSlots)
	}
	data, err := os.ReadFile(s.SlotPath(slot))
	if err != nil {
		return nil, fmt.Errorf("reading slot %d: %w", slot, err)
	}
	sd, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot, err)
	}
	return sd, nil
}

// Delete removes a slot file. Returns false if the slot had no save.
func (s *Store) Delete(slot int) (bool, error) {
	if !s.ValidSlot(slot) {
		return false, fmt.Errorf("slot %d out of range 1..%d", slot, s.MaxSlots)
	}
	err := os.Remove(s.SlotPath(slot))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("deleting slot %d: %w", slot, err)
	}
	return true, nil
}

// List describes every slot. A file that exists but does not parse is shown
// as an empty slot rather than aborting the menu.
func (s *Store) List() []SlotInfo {
	infos := make([]SlotInfo, 0, s.MaxSlots)
	for slot := 1; slot <= s.MaxSlots; slot++ {
		info := SlotInfo{Slot: slot}
		data, err := os.ReadFile(s.SlotPath(slot))
		if err == nil {
			var doc saveDoc
			if json.Unmarshal(data, &doc) == nil && doc.Player.Player != nil {
				info.Exists = true
				info.Name = doc.Player.Name
				info.Level = doc.Player.Level
				info.SavedAt = doc.SavedAt
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// HasAny reports whether at least one slot holds a readable save.
func (s *Store) HasAny() bool {
	for _, info := range s.List() {
		if info.Exists {
			return true
		}
	}
	return false
}
