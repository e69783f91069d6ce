package chipdb

import "testing"

func TestGuessSectorSize(t *testing.T) {
	cases := []struct {
		kb     uint32
		sector uint32
	}{
		{100, 4096},
		{128, 1024},
		{256, 2048},
		{64, 1024},
		{4032, 4096},
		{960, 4096},
		{192, 4096},
		{16, 1024},
		{1024, 2048},
	}

	for _, c := range cases {
		if result := GuessSectorSize(c.kb); result != c.sector {
			t.Errorf("GuessSectorSize(%d): %d!=%d", c.kb, result, c.sector)
		}
	}
}

func TestLookupFirstMatch(t *testing.T) {
	for i, m := range chips {
		result, ok := Lookup(m.ID)
		if !ok {
			t.Errorf("%s (%08x) not found", m.Name, m.ID)
			continue
		}
		if result.ID != m.ID {
			t.Errorf("Lookup(%08x) returned id %08x", m.ID, result.ID)
		}

		/* The result must be the earliest entry with this id */
		for j := 0; j < i; j++ {
			if chips[j].ID == m.ID && chips[j] != result {
				t.Errorf("Lookup(%08x) returned %s, earlier entry is %s", m.ID, result.Name, chips[j].Name)
			}
		}
	}
}

func TestLookupAliases(t *testing.T) {
	cases := []struct {
		id   uint32
		name string
	}{
		{0xF0050340, "AR8F403CGT6-A"},
		{0x70050243, "AT32F403ACCU7"},
		{0x700301C5, "AT32F413KBU7-4"},
		{0x70030109, "AT32F415C8T7"},
		{0x700301CF, "AT32F403CBT6"},
	}

	for _, c := range cases {
		result, ok := Lookup(c.id)
		if !ok || result.Name != c.name {
			t.Errorf("Lookup(%08x): got %q, want %q", c.id, result.Name, c.name)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	for _, id := range []uint32{0, 0xFFFFFFFF, 0x12345678} {
		if result, ok := Lookup(id); ok {
			t.Errorf("Lookup(%08x) unexpectedly found %s", id, result.Name)
		}
	}
}

func TestTableGeometry(t *testing.T) {
	if len(chips) < 150 {
		t.Fatal("Chip table is too short:", len(chips))
	}

	for _, m := range chips {
		if m.Name == "" || m.SectorSize == 0 || m.FlashSizeKB == 0 {
			t.Errorf("Incomplete entry: %+v", m)
			continue
		}
		if (m.FlashSizeKB<<10)%m.SectorSize != 0 {
			t.Errorf("%s: %dkB is not a multiple of %d byte sectors", m.Name, m.FlashSizeKB, m.SectorSize)
		}
	}
}

func TestByName(t *testing.T) {
	result, ok := ByName("at32f415rct7")
	if !ok {
		t.Fatal("AT32F415RCT7 not found")
	}
	if result.ID != 0x70030240 || result.FlashSizeKB != 256 {
		t.Error("Wrong record returned:", result)
	}

	if _, ok := ByName("STM32F103C8"); ok {
		t.Error("Found a part that is not in the table")
	}
}

func TestAllIsCopy(t *testing.T) {
	all := All()
	if len(all) != len(chips) {
		t.Fatal("Length mismatch", len(all), len(chips))
	}

	all[0].Name = "modified"
	if chips[0].Name == "modified" {
		t.Error("All() exposes the table")
	}
}
