package parameter

// Weapon
const (
	// EntityCooldownWeapon is the weapon cooldown in ticks
	EntityCooldownWeapon = 7

	// ProjectileSpeed is the muzzle speed in px/s
	ProjectileSpeed = 1200.0
)

// Projectile pool
const (
	// ProjectilesCount is the fixed pool capacity
	ProjectilesCount = 69

	// ProjectileLifetime is the flight time before a projectile poofs, in seconds
	ProjectileLifetime = 5.0

	// ProjectileLifetimeEpsilon absorbs the float drift of summing fixed ticks
	ProjectileLifetimeEpsilon = 1e-9

	// ProjectileTrackingPadding is the edge of the debug pick box around a projectile
	ProjectileTrackingPadding = 50.0
)
