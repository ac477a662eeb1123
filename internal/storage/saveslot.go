package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// The save slot is a fixed 5-byte record: one presence byte followed by the
// best score as a little-endian uint32. A presence byte of zero means the
// slot holds no data. The layout is stable so an on-disk slot survives
// upgrades.
const (
	slotLen          = 5
	slotPresent byte = 1

	slotObject   = "saves"
	slotProperty = "highscore"
)

// EncodeSlot packs a best score into the 5-byte slot format.
func EncodeSlot(highScore uint32) []byte {
	buf := make([]byte, slotLen)
	buf[0] = slotPresent
	binary.LittleEndian.PutUint32(buf[1:], highScore)
	return buf
}

// DecodeSlot unpacks a slot buffer. ok is false when the buffer is malformed
// or marked empty; callers should treat that as "no saved score", not an
// error.
func DecodeSlot(buf []byte) (highScore uint32, ok bool) {
	if len(buf) != slotLen || buf[0] == 0 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf[1:]), true
}

// SaveSlot stores the best score in the platform's per-app data directory
// via gdata. It survives without the SQLite history database and is the
// source the session's HI readout seeds from.
type SaveSlot struct {
	m *gdata.Manager
}

// OpenSaveSlot opens the per-app save storage.
func OpenSaveSlot(appName string) (*SaveSlot, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save slot: %w", err)
	}
	return &SaveSlot{m: m}, nil
}

// HighScore reads the saved best score. A missing or empty slot yields 0.
func (s *SaveSlot) HighScore() (uint32, error) {
	if !s.m.ObjectPropExists(slotObject, slotProperty) {
		return 0, nil
	}
	buf, err := s.m.LoadObjectProp(slotObject, slotProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read save slot: %w", err)
	}
	score, ok := DecodeSlot(buf)
	if !ok {
		return 0, nil
	}
	return score, nil
}

// SetHighScore writes a new best score to the slot.
func (s *SaveSlot) SetHighScore(score uint32) error {
	if err := s.m.SaveObjectProp(slotObject, slotProperty, EncodeSlot(score)); err != nil {
		return fmt.Errorf("storage: cannot write save slot: %w", err)
	}
	return nil
}
