package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "omegavoid.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := SaveSlot{
		Slot:         1,
		Seed:         42,
		PlayerX:      1234.5,
		PlayerY:      -678.9,
		Cash:         9000,
		LastDockedID: "st_fixed_omega",
		Cargo:        map[string]int{"food": 5, "minerals": 2},
		Upgrades:     map[string]int{"cargo_hold": 1},
		Discovered:   []string{"st_fixed_omega", "st_3_-2"},
		KnownPrices: map[string]map[string]int{
			"st_fixed_omega": {"food": 18, "computers": 310},
		},
		KnownQuantities: map[string]map[string]int{
			"st_fixed_omega": {"food": 40},
		},
		ActiveBeacons: []string{"bcn_alpha"},
		QuestBlob:     []byte(`{"stage":3,"flags":["met_broker"]}`),
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out == nil {
		t.Fatal("Load returned nil for an occupied slot")
	}

	if out.Seed != in.Seed || out.PlayerX != in.PlayerX || out.PlayerY != in.PlayerY {
		t.Errorf("position fields differ: %+v", out)
	}
	if out.Cash != in.Cash || out.LastDockedID != in.LastDockedID {
		t.Errorf("cash/dock fields differ: %+v", out)
	}
	if out.Cargo["food"] != 5 || out.Upgrades["cargo_hold"] != 1 {
		t.Errorf("cargo/upgrades differ: %+v", out)
	}
	if len(out.Discovered) != 2 {
		t.Errorf("discovered = %v", out.Discovered)
	}
	if out.KnownPrices["st_fixed_omega"]["computers"] != 310 {
		t.Errorf("known prices differ: %+v", out.KnownPrices)
	}
	if len(out.ActiveBeacons) != 1 || out.ActiveBeacons[0] != "bcn_alpha" {
		t.Errorf("beacons differ: %v", out.ActiveBeacons)
	}
	if !bytes.Equal(out.QuestBlob, in.QuestBlob) {
		t.Errorf("quest blob differs: %q", out.QuestBlob)
	}
	if out.SavedAt.IsZero() {
		t.Error("SavedAt not populated")
	}
}

func TestLoadEmptySlot(t *testing.T) {
	store := openTestStore(t)

	out, err := store.Load(7)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != nil {
		t.Errorf("empty slot must load as nil, got %+v", out)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(SaveSlot{Slot: 1, Cash: 100}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(SaveSlot{Slot: 1, Cash: 999}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Cash != 999 {
		t.Errorf("cash = %d, want the overwritten 999", out.Cash)
	}

	infos, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(infos) != 1 {
		t.Errorf("slots = %d, want 1 after overwrite", len(infos))
	}
}

func TestCorruptColumnsDegradeToDefaults(t *testing.T) {
	store := openTestStore(t)
	if err := store.Save(SaveSlot{Slot: 1, Cash: 500}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, err := store.db.Exec(
		`UPDATE saves SET cargo_json = 'not json', known_prices_json = '[]' WHERE slot = 1`)
	if err != nil {
		t.Fatalf("corrupting row: %v", err)
	}

	out, err := store.Load(1)
	if err != nil {
		t.Fatalf("Load must survive corrupt columns: %v", err)
	}
	if out.Cash != 500 {
		t.Errorf("intact column lost: cash = %d", out.Cash)
	}
	if out.Cargo == nil || len(out.Cargo) != 0 {
		t.Errorf("corrupt cargo must default to empty, got %v", out.Cargo)
	}
	if out.KnownPrices == nil || len(out.KnownPrices) != 0 {
		t.Errorf("corrupt prices must default to empty, got %v", out.KnownPrices)
	}
}

func TestTamperedQuestBlobDropped(t *testing.T) {
	store := openTestStore(t)
	if err := store.Save(SaveSlot{Slot: 1, QuestBlob: []byte("quest state")}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tampered := compress([]byte("forged state"))
	if _, err := store.db.Exec(`UPDATE saves SET quest_blob = ? WHERE slot = 1`, tampered); err != nil {
		t.Fatalf("tampering: %v", err)
	}

	out, err := store.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.QuestBlob != nil {
		t.Errorf("blob failing its checksum must be dropped, got %q", out.QuestBlob)
	}
}

func TestDeleteSlot(t *testing.T) {
	store := openTestStore(t)
	if err := store.Save(SaveSlot{Slot: 2, Cash: 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	out, err := store.Load(2)
	if err != nil || out != nil {
		t.Errorf("deleted slot must be empty, got %+v, %v", out, err)
	}
	if err := store.Delete(99); err != nil {
		t.Errorf("deleting an empty slot must not error: %v", err)
	}
}
