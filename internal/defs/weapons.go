// internal/defs/weapons.go
package defs

// Weapon holds the static stats of a gun. Ammo is the amount it comes with,
// MaxAmmo the cap for ammo pickups; both are InfiniteAmmo for the pistol.
type Weapon struct {
	Name        string
	Damage      int
	FireRate    int     // ticks between shots
	Speed       float64 // bullet speed, px per tick
	Spread      float64 // radians, each bullet gets ±Spread
	BulletCount int
	Ammo        int
	MaxAmmo     int
}

// Pistol is the starting weapon.
var Pistol = Weapon{Name: "Pistol", Damage: 10, FireRate: 10, Speed: 10, Spread: 0, BulletCount: 1, Ammo: InfiniteAmmo, MaxAmmo: InfiniteAmmo}

// WeaponLibrary is every weapon that can be found in chests, in catalog order.
var WeaponLibrary = []Weapon{
	{Name: "Shotgun", Damage: 30, FireRate: 20, Speed: 8, Spread: 0.2, BulletCount: 5, Ammo: 50, MaxAmmo: 100},
	{Name: "Sniper", Damage: 50, FireRate: 30, Speed: 12, Spread: 0.0, BulletCount: 1, Ammo: 20, MaxAmmo: 50},
	{Name: "Laser", Damage: 15, FireRate: 5, Speed: 15, Spread: 0.0, BulletCount: 1, Ammo: 100, MaxAmmo: 150},
	{Name: "Grenade Launcher", Damage: 80, FireRate: 60, Speed: 6, Spread: 0.3, BulletCount: 1, Ammo: 10, MaxAmmo: 20},
	{Name: "Flamethrower", Damage: 5, FireRate: 3, Speed: 10, Spread: 0.4, BulletCount: 3, Ammo: 150, MaxAmmo: 200},
	{Name: "Plasma Rifle", Damage: 25, FireRate: 15, Speed: 10, Spread: 0.1, BulletCount: 2, Ammo: 40, MaxAmmo: 80},
	{Name: "Rocket Launcher", Damage: 100, FireRate: 90, Speed: 5, Spread: 0.4, BulletCount: 1, Ammo: 8, MaxAmmo: 15},
	{Name: "Freeze Shotgun", Damage: 20, FireRate: 25, Speed: 7, Spread: 0.25, BulletCount: 6, Ammo: 30, MaxAmmo: 60},
}
