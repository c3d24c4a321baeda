package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Coin       = donburi.NewTag().SetName("Coin")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
	Projectile = donburi.NewTag().SetName("Projectile")

	// Round marks every entity rebuilt when a new round starts
	Round = donburi.NewTag().SetName("Round")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvCoin       = "Coin"
	ResolvPowerUp    = "PowerUp"
	ResolvProjectile = "Projectile"
)
