package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the shape of a tuning file. Every section is optional and
// only the keys present in the document replace the compiled-in values.
type Overrides struct {
	Player     *PlayerConfig      `yaml:"player"`
	Enemy      *EnemyConfig       `yaml:"enemy"`
	Coin       *CollectibleConfig `yaml:"coin"`
	PowerUp    *CollectibleConfig `yaml:"powerUp"`
	Projectile *ProjectileConfig  `yaml:"projectile"`
	Combat     *CombatConfig      `yaml:"combat"`
	Particle   *ParticleConfig    `yaml:"particle"`
	Countdown  *CountdownConfig   `yaml:"countdown"`
	Round      *RoundConfig       `yaml:"round"`
	Audio      *AudioConfig       `yaml:"audio"`
}

// LoadOverrides reads a YAML tuning file and applies it on top of the defaults.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes data into copies of the current values and only
// commits them when the result validates.
func ApplyOverrides(data []byte) error {
	player, enemy, coin, powerUp := Player, Enemy, Coin, PowerUp
	projectile, combat, particle := Projectile, Combat, Particle
	countdown, round, audio := Countdown, Round, Audio

	o := Overrides{
		Player:     &player,
		Enemy:      &enemy,
		Coin:       &coin,
		PowerUp:    &powerUp,
		Projectile: &projectile,
		Combat:     &combat,
		Particle:   &particle,
		Countdown:  &countdown,
		Round:      &round,
		Audio:      &audio,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse overrides: %w", err)
	}

	prev := snapshot()
	Player, Enemy, Coin, PowerUp = player, enemy, coin, powerUp
	Projectile, Combat, Particle = projectile, combat, particle
	Countdown, Round, Audio = countdown, round, audio

	if err := Validate(); err != nil {
		prev.restore()
		return err
	}
	return nil
}

type tuning struct {
	player     PlayerConfig
	enemy      EnemyConfig
	coin       CollectibleConfig
	powerUp    CollectibleConfig
	projectile ProjectileConfig
	combat     CombatConfig
	particle   ParticleConfig
	countdown  CountdownConfig
	round      RoundConfig
	audio      AudioConfig
}

func snapshot() tuning {
	return tuning{Player, Enemy, Coin, PowerUp, Projectile, Combat, Particle, Countdown, Round, Audio}
}

func (t tuning) restore() {
	Player, Enemy, Coin, PowerUp = t.player, t.enemy, t.coin, t.powerUp
	Projectile, Combat, Particle = t.projectile, t.combat, t.particle
	Countdown, Round, Audio = t.countdown, t.round, t.audio
}

// maxLives is the most lives the HUD and the player's lives range allow.
const maxLives = 3

// Validate checks the invariants the game relies on and reports every violation.
func Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.speed", Player.Speed)
	positive("player.powerUpMultiplier", Player.PowerUpMultiplier)
	positive("player.invincibleTicks", float64(Player.InvincibleTicks))
	positive("player.powerUpTicks", float64(Player.PowerUpTicks))
	positive("player.blinkPeriod", float64(Player.BlinkPeriod))
	if Player.StartingLives <= 0 || Player.StartingLives > maxLives {
		errs = append(errs, fmt.Errorf("player.startingLives must be in [1,%d], got %d", maxLives, Player.StartingLives))
	}
	positive("enemy.speed", Enemy.Speed)
	positive("enemy.wanderInterval", float64(Enemy.WanderInterval))
	positive("enemy.fallbackSize", Enemy.FallbackSize)
	positive("coin.radius", Coin.Radius)
	positive("powerUp.radius", PowerUp.Radius)
	positive("projectile.radius", Projectile.Radius)
	positive("coin.pickupRadius", Coin.PickupRadius)
	positive("powerUp.pickupRadius", PowerUp.PickupRadius)
	positive("combat.enemyHitRadius", Combat.EnemyHitRadius)
	positive("combat.projectileHitRadius", Combat.ProjectileHitRadius)
	positive("combat.broadphaseCellSize", float64(Combat.BroadphaseCellSize))
	positive("projectile.minSpeed", Projectile.MinSpeed)
	if Projectile.MaxSpeed <= Projectile.MinSpeed {
		errs = append(errs, fmt.Errorf("projectile.maxSpeed %v must exceed minSpeed %v", Projectile.MaxSpeed, Projectile.MinSpeed))
	}
	if Projectile.ExitMargin <= Projectile.SpawnOffset {
		errs = append(errs, fmt.Errorf("projectile.exitMargin %v must exceed spawnOffset %v", Projectile.ExitMargin, Projectile.SpawnOffset))
	}
	if Projectile.Count < 0 {
		errs = append(errs, fmt.Errorf("projectile.count must not be negative, got %d", Projectile.Count))
	}
	positive("particle.lifetime", float64(Particle.Lifetime))
	if Countdown.Start < 0 {
		errs = append(errs, fmt.Errorf("countdown.start must not be negative, got %d", Countdown.Start))
	}
	if Countdown.AdvanceTick <= Countdown.ShowTick {
		errs = append(errs, fmt.Errorf("countdown.advanceTick %d must exceed showTick %d", Countdown.AdvanceTick, Countdown.ShowTick))
	}
	if Round.CoinCount <= 0 {
		errs = append(errs, fmt.Errorf("round.coinCount must be positive, got %d", Round.CoinCount))
	}
	if Round.EnemyCount < 0 || Round.PowerUpCount < 0 {
		errs = append(errs, errors.New("round enemy and powerup counts must not be negative"))
	}

	for name, def := range map[string]AnimationDef{
		"playerIdle": Animations.PlayerIdle,
		"playerRun":  Animations.PlayerRun,
		"enemyRun":   Animations.EnemyRun,
		"coin":       Animations.Coin,
		"powerUp":    Animations.PowerUp,
		"projectile": Animations.Projectile,
	} {
		if len(def.Frames) == 0 {
			errs = append(errs, fmt.Errorf("animation %s has no frames", name))
		}
		if def.Hold <= 0 {
			errs = append(errs, fmt.Errorf("animation %s hold must be positive, got %d", name, def.Hold))
		}
	}

	return errors.Join(errs...)
}
