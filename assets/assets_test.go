package assets

import (
	"image"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadIslandLevel(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel("levels/island.tmx")
	if err != nil {
		t.Fatalf("LoadLevel returned error: %v", err)
	}

	if level.Width != 800 || level.Height != 600 {
		t.Errorf("level size = %dx%d, want 800x600", level.Width, level.Height)
	}
	if level.PlayerSpawn != (Point{X: 400, Y: 300}) {
		t.Errorf("spawn = %+v, want (400,300)", level.PlayerSpawn)
	}

	wantTerritories := []image.Rectangle{
		image.Rect(80, 80, 260, 200),
		image.Rect(520, 80, 700, 200),
		image.Rect(300, 420, 500, 540),
	}
	if len(level.Territories) != len(wantTerritories) {
		t.Fatalf("got %d territories, want %d", len(level.Territories), len(wantTerritories))
	}
	for i, want := range wantTerritories {
		if level.Territories[i] != want {
			t.Errorf("territory %d = %v, want %v", i, level.Territories[i], want)
		}
	}

	if len(level.Coins) != 10 {
		t.Fatalf("got %d coins, want 10", len(level.Coins))
	}
	if level.Coins[0] != (Point{X: 150, Y: 300}) || level.Coins[9] != (Point{X: 750, Y: 200}) {
		t.Errorf("coin order not preserved: first %+v last %+v", level.Coins[0], level.Coins[9])
	}

	wantPowerUps := []Point{{250, 250}, {550, 350}, {450, 450}}
	if len(level.PowerUps) != len(wantPowerUps) {
		t.Fatalf("got %d powerups, want %d", len(level.PowerUps), len(wantPowerUps))
	}
	for i, want := range wantPowerUps {
		if level.PowerUps[i] != want {
			t.Errorf("powerup %d = %+v, want %+v", i, level.PowerUps[i], want)
		}
	}

	if err := level.Validate(10, 3, 3); err != nil {
		t.Errorf("Validate returned error: %v", err)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := NewLevelLoader().LoadLevel("levels/nowhere.tmx"); err == nil {
		t.Fatal("expected error for missing level")
	}
}

func TestLevelValidate(t *testing.T) {
	level := Level{
		Territories: []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(5, 5, 5, 20)},
		Coins:       []Point{{1, 1}},
	}
	err := level.Validate(2, 3, 1)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"territory 1 is empty", "1 coins, need 2", "2 territories, need 3", "0 powerups, need 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
}

func TestReadFilePrefersOverlay(t *testing.T) {
	defer SetOverlay(nil)

	SetOverlay(fstest.MapFS{
		"audio/sfx/coin.wav": &fstest.MapFile{Data: []byte("overlay")},
	})

	data, err := ReadFile("audio/sfx/coin.wav")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if string(data) != "overlay" {
		t.Errorf("ReadFile = %q, want overlay contents", data)
	}

	// Files missing from the overlay fall through to the embedded data.
	if _, err := ReadFile("levels/island.tmx"); err != nil {
		t.Errorf("embedded level not reachable through overlay: %v", err)
	}
}

func TestLookupSpriteMissReportsNotFound(t *testing.T) {
	defer SetOverlay(nil)
	SetOverlay(fstest.MapFS{})

	for i := 0; i < 2; i++ {
		img, ok := LookupSprite("player/idle/1")
		if ok || img != nil {
			t.Fatalf("lookup %d: got (%v, %v), want (nil, false)", i, img, ok)
		}
	}
	if !spriteLoader.miss["player/idle/1"] {
		t.Error("miss was not cached")
	}
}

func TestLookupSpriteUndecodableIsMiss(t *testing.T) {
	defer SetOverlay(nil)
	SetOverlay(fstest.MapFS{
		"images/coin_1.png": &fstest.MapFile{Data: []byte("not a png")},
	})

	if _, ok := LookupSprite("coin_1"); ok {
		t.Fatal("expected undecodable sprite to be reported missing")
	}
}
