// Package storage provides SQLite-based persistence for game save slots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A save never stores world objects: the world regenerates from the seed, so
// a slot only carries the player's situation and the discovery record. The
// quest engine's state travels as an opaque blob, LZ4-compressed and guarded
// by a BLAKE3 checksum; everything else is individually recoverable, a
// corrupt column falls back to its zero default instead of failing the load.
package storage

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for save persistence.
type Store struct {
	db *sql.DB
}

// SaveSlot is one persisted game. Maps may be nil on a fresh slot; Load
// always returns them allocated.
type SaveSlot struct {
	Slot            int
	Seed            int64
	PlayerX         float64
	PlayerY         float64
	Cash            int64
	LastDockedID    string
	Cargo           map[string]int
	Upgrades        map[string]int
	Discovered      []string
	KnownPrices     map[string]map[string]int
	KnownQuantities map[string]map[string]int
	ActiveBeacons   []string
	QuestBlob       []byte // opaque quest engine state
	SavedAt         time.Time
}

// SlotInfo is the listing view of a save slot.
type SlotInfo struct {
	Slot    int
	Cash    int64
	SavedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot INTEGER PRIMARY KEY,
			seed INTEGER NOT NULL DEFAULT 0,
			player_x REAL NOT NULL DEFAULT 0,
			player_y REAL NOT NULL DEFAULT 0,
			cash INTEGER NOT NULL DEFAULT 0,
			last_docked TEXT NOT NULL DEFAULT '',
			cargo_json TEXT NOT NULL DEFAULT '{}',
			upgrades_json TEXT NOT NULL DEFAULT '{}',
			discovered_json TEXT NOT NULL DEFAULT '[]',
			known_prices_json TEXT NOT NULL DEFAULT '{}',
			known_quantities_json TEXT NOT NULL DEFAULT '{}',
			beacons_json TEXT NOT NULL DEFAULT '[]',
			quest_blob BLOB,
			quest_sum BLOB,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes a slot, replacing any previous save in it.
func (s *Store) Save(slot SaveSlot) error {
	cargo := mustJSON(slot.Cargo)
	upgrades := mustJSON(slot.Upgrades)
	discovered := mustJSON(slot.Discovered)
	prices := mustJSON(slot.KnownPrices)
	quantities := mustJSON(slot.KnownQuantities)
	beacons := mustJSON(slot.ActiveBeacons)

	var blob, sum []byte
	if len(slot.QuestBlob) > 0 {
		blob = compress(slot.QuestBlob)
		h := blake3.Sum256(slot.QuestBlob)
		sum = h[:]
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO saves
		 (slot, seed, player_x, player_y, cash, last_docked,
		  cargo_json, upgrades_json, discovered_json,
		  known_prices_json, known_quantities_json, beacons_json,
		  quest_blob, quest_sum, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		slot.Slot, slot.Seed, slot.PlayerX, slot.PlayerY, slot.Cash, slot.LastDockedID,
		cargo, upgrades, discovered, prices, quantities, beacons, blob, sum,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %d: %w", slot.Slot, err)
	}
	return nil
}

// Load reads a slot. Returns nil without error when the slot is empty.
// Unreadable columns degrade to their defaults; only a missing row or a
// database error is reported.
func (s *Store) Load(slot int) (*SaveSlot, error) {
	row := s.db.QueryRow(
		`SELECT seed, player_x, player_y, cash, last_docked,
		        cargo_json, upgrades_json, discovered_json,
		        known_prices_json, known_quantities_json, beacons_json,
		        quest_blob, quest_sum, updated_at
		 FROM saves WHERE slot = ?`, slot)

	out := &SaveSlot{Slot: slot}
	var cargo, upgrades, discovered, prices, quantities, beacons sql.NullString
	var blob, sum []byte
	var updatedAt any

	err := row.Scan(&out.Seed, &out.PlayerX, &out.PlayerY, &out.Cash, &out.LastDockedID,
		&cargo, &upgrades, &discovered, &prices, &quantities, &beacons,
		&blob, &sum, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %d: %w", slot, err)
	}

	out.Cargo = decodeIntMap(cargo)
	out.Upgrades = decodeIntMap(upgrades)
	out.Discovered = decodeStrings(discovered)
	out.KnownPrices = decodeNestedMap(prices)
	out.KnownQuantities = decodeNestedMap(quantities)
	out.ActiveBeacons = decodeStrings(beacons)
	out.QuestBlob = verifyBlob(blob, sum)
	out.SavedAt = parseTime(updatedAt)
	return out, nil
}

// Slots lists the occupied save slots, newest first.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, cash, updated_at FROM saves ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list slots: %w", err)
	}
	defer rows.Close()

	var infos []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Cash, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan slot row: %w", err)
		}
		info.SavedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}

// Delete removes a save slot. Deleting an empty slot is not an error.
func (s *Store) Delete(slot int) error {
	if _, err := s.db.Exec(`DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %d: %w", slot, err)
	}
	return nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func decodeIntMap(ns sql.NullString) map[string]int {
	out := make(map[string]int)
	if ns.Valid {
		_ = json.Unmarshal([]byte(ns.String), &out)
	}
	return out
}

func decodeNestedMap(ns sql.NullString) map[string]map[string]int {
	out := make(map[string]map[string]int)
	if ns.Valid {
		_ = json.Unmarshal([]byte(ns.String), &out)
	}
	return out
}

func decodeStrings(ns sql.NullString) []string {
	var out []string
	if ns.Valid {
		_ = json.Unmarshal([]byte(ns.String), &out)
	}
	return out
}

// verifyBlob decompresses the quest blob and checks it against the stored
// checksum. Any mismatch or decode failure yields nil: a lost quest log is
// recoverable, a corrupt one silently trusted is not.
func verifyBlob(blob, sum []byte) []byte {
	if len(blob) == 0 || len(sum) != 32 {
		return nil
	}
	raw, err := decompress(blob)
	if err != nil {
		return nil
	}
	h := blake3.Sum256(raw)
	if !bytes.Equal(h[:], sum) {
		return nil
	}
	return raw
}

func compress(src []byte) []byte {
	buf := &bytes.Buffer{}
	zw := lz4.NewWriter(buf)
	zw.Write(src)
	zw.Close()
	return buf.Bytes()
}

func decompress(src []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))
	return io.ReadAll(zr)
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
