package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

//go:embed all:data
var embeddedFS embed.FS

var (
	dataFS  = mustSub(embeddedFS, "data")
	overlay fs.FS
)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded %s: %v", dir, err))
	}
	return sub
}

// SetOverlay makes files in fsys (sprites under images/, sounds under audio/)
// take precedence over the embedded data. Passing nil removes the overlay.
func SetOverlay(fsys fs.FS) {
	overlay = fsys
	spriteLoader.reset()
}

// ReadFile reads path from the overlay first and then from the embedded data.
func ReadFile(path string) ([]byte, error) {
	if overlay != nil {
		data, err := fs.ReadFile(overlay, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return fs.ReadFile(dataFS, path)
}

// Point is a position read from the level map
type Point struct {
	X, Y float64
}

// Level holds the placement data for one island
type Level struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn Point
	Territories []image.Rectangle
	Coins       []Point
	PowerUps    []Point
}

// Validate reports a malformed level or one that cannot supply the requested counts.
func (l Level) Validate(coins, enemies, powerUps int) error {
	var errs []error
	for i, t := range l.Territories {
		if t.Empty() {
			errs = append(errs, fmt.Errorf("territory %d is empty: %v", i, t))
		}
	}
	if len(l.Coins) < coins {
		errs = append(errs, fmt.Errorf("level has %d coins, need %d", len(l.Coins), coins))
	}
	if len(l.Territories) < enemies {
		errs = append(errs, fmt.Errorf("level has %d territories, need %d", len(l.Territories), enemies))
	}
	if len(l.PowerUps) < powerUps {
		errs = append(errs, fmt.Errorf("level has %d powerups, need %d", len(l.PowerUps), powerUps))
	}
	return errors.Join(errs...)
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LoadLevel parses a Tiled map from the embedded data.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(dataFS))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		// Object ids fix the order entities are handed out in.
		objects := append([]*tiled.Object(nil), og.Objects...)
		sort.SliceStable(objects, func(i, j int) bool { return objects[i].ID < objects[j].ID })

		switch og.Name {
		case "PlayerSpawn":
			if len(objects) > 0 {
				level.PlayerSpawn = Point{X: objects[0].X, Y: objects[0].Y}
				spawnFound = true
			}
		case "Territories":
			for _, o := range objects {
				x, y := int(math.Round(o.X)), int(math.Round(o.Y))
				w, h := int(math.Round(o.Width)), int(math.Round(o.Height))
				level.Territories = append(level.Territories, image.Rect(x, y, x+w, y+h))
			}
		case "Coins":
			for _, o := range objects {
				level.Coins = append(level.Coins, Point{X: o.X, Y: o.Y})
			}
		case "PowerUps":
			for _, o := range objects {
				level.PowerUps = append(level.PowerUps, Point{X: o.X, Y: o.Y})
			}
		}
	}

	if !spawnFound {
		return Level{}, fmt.Errorf("level %s: no player spawn defined", levelPath)
	}

	return level, nil
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// SpriteLoader decodes sprites on first use. Misses are cached too so a
// missing file is only looked for and reported once.
type SpriteLoader struct {
	mu    sync.Mutex
	cache map[string]*ebiten.Image
	miss  map[string]bool
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[string]*ebiten.Image),
		miss:  make(map[string]bool),
	}
}

func (l *SpriteLoader) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]*ebiten.Image)
	l.miss = make(map[string]bool)
}

// Lookup returns the sprite for a frame identifier such as "player/run/3".
func (l *SpriteLoader) Lookup(id string) (*ebiten.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[id]; ok {
		return img, true
	}
	if l.miss[id] {
		return nil, false
	}

	path := fmt.Sprintf("images/%s.png", id)
	imgBytes, err := ReadFile(path)
	if err != nil {
		l.miss[id] = true
		log.Printf("Warning: Sprite %s not found, drawing fallback: %v", id, err)
		return nil, false
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		l.miss[id] = true
		log.Printf("Warning: Failed to decode sprite %s: %v", path, err)
		return nil, false
	}

	l.cache[id] = img
	return img, true
}

var (
	spriteLoader = NewSpriteLoader()
)

// LookupSprite returns the sprite for id and whether it exists.
func LookupSprite(id string) (*ebiten.Image, bool) {
	return spriteLoader.Lookup(id)
}
