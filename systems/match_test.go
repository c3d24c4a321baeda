package systems

import (
	"testing"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/yohamta/donburi"
)

// countdownTicks is how long 3-2-1-GO lasts from StartCountdown.
func countdownTicks() int {
	c := cfg.Countdown
	return c.AdvanceTick + c.Start*(c.AdvanceTick-c.ShowTick)
}

func TestCountdownStartsRound(t *testing.T) {
	e := newTestWorld(t)
	s := GetOrCreateSession(e)

	// Leave the previous round dirty.
	s.Score = 70
	components.Coin.Get(coinEntries(e)[0]).Collected = true
	testPlayer(t, e).Lives = 1
	GetOrCreateParticles(e).Spawn(s.Rand, 10, 10, cfg.Gold, 5, 30, 1)

	StartCountdown(e)
	if countdownTicks() != 150 {
		t.Fatalf("countdown lasts %d ticks, want 150", countdownTicks())
	}

	ticks(e, countdownTicks()-1)
	if s.State != cfg.StateCountdown {
		t.Fatalf("State = %v one tick early", s.State)
	}
	if n := GetOrCreateCountdown(e).Number; n != 0 {
		t.Errorf("Number = %d on the last tick, want 0 (GO)", n)
	}

	e.Update()
	if s.State != cfg.StatePlaying {
		t.Fatalf("State = %v, want playing", s.State)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if CollectedCoins(e) != 0 {
		t.Errorf("CollectedCoins = %d in a fresh round", CollectedCoins(e))
	}
	if lives := testPlayer(t, e).Lives; lives != cfg.Player.StartingLives {
		t.Errorf("Lives = %d, want %d", lives, cfg.Player.StartingLives)
	}
	if n := len(GetOrCreateParticles(e).Items); n != 0 {
		t.Errorf("%d particles survived the reset", n)
	}
	if GetOrCreateAudio(e).Music != components.MusicPlay {
		t.Error("soundtrack not restarted with music on")
	}
}

func TestRoundResetReplacesEntities(t *testing.T) {
	e := newTestWorld(t)
	StartCountdown(e)
	ticks(e, countdownTicks())

	counts := map[string]int{}
	count := func(name string) func(*donburi.Entry) {
		return func(*donburi.Entry) { counts[name]++ }
	}
	components.Player.Each(e.World, count("player"))
	components.Enemy.Each(e.World, count("enemy"))
	components.Coin.Each(e.World, count("coin"))
	components.PowerUp.Each(e.World, count("powerup"))
	components.Projectile.Each(e.World, count("projectile"))

	want := map[string]int{
		"player":     1,
		"enemy":      cfg.Round.EnemyCount,
		"coin":       cfg.Round.CoinCount,
		"powerup":    cfg.Round.PowerUpCount,
		"projectile": cfg.Projectile.Count,
	}
	total := 0
	for name, n := range want {
		total += n
		if counts[name] != n {
			t.Errorf("%s count = %d, want %d", name, counts[name], n)
		}
	}

	space := components.Space.Get(components.Space.MustFirst(e.World))
	if got := len(space.Objects()); got != total {
		t.Errorf("space holds %d objects, want %d", got, total)
	}
}

func TestCountdownIgnoresClicks(t *testing.T) {
	e := newTestWorld(t)
	StartCountdown(e)
	e.Update()

	start := cfg.Menu.Buttons[0].Rect.Min
	click(e, start.X+1, start.Y+1)
	click(e, 5, 5)

	if s := GetOrCreateSession(e); s.State != cfg.StateCountdown {
		t.Errorf("State = %v, want countdown", s.State)
	}
	if timer := GetOrCreateCountdown(e).Timer; timer != 3 {
		t.Errorf("Timer = %d after 3 ticks, want 3", timer)
	}
}

func TestGameplayFrozenOutsidePlaying(t *testing.T) {
	e := newTestWorld(t)
	entry, _ := components.Enemy.First(e.World)
	enemy := components.Enemy.Get(entry)
	before := enemy.Pos

	ticks(e, 10)

	if enemy.Pos != before {
		t.Errorf("enemy moved on the menu: %v -> %v", before, enemy.Pos)
	}
}
