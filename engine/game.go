package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/audio"
	"github.com/lixenwraith/roomrow/entity"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/projectile"
	"github.com/lixenwraith/roomrow/room"
	"github.com/lixenwraith/roomrow/vmath"
)

// DrawState is the debug tile brush, chosen by the tile under the initial press
type DrawState uint8

const (
	DrawIdle DrawState = iota
	DrawCreate
	DrawDelete
)

// Options configure a new game
type Options struct {
	Gravity  vmath.Vec2F
	Debug    bool
	StepMode bool
	Seed     int64

	// FPS is the tick rate, zero uses SimulationFPS
	FPS int

	// Store persists rooms, nil disables save and load
	Store *room.Store

	// Audio receives sample plays, nil is silent
	Audio entity.SamplePlayer
	Bank  audio.Bank
}

// Game owns the whole simulation state and is driven from a single goroutine
type Game struct {
	Rooms       *room.Row
	Entities    entity.Table
	Projectiles *projectile.Pool
	Gravity     vmath.Vec2F
	Camera      Camera
	Clock       *Clock
	Debug       bool

	// Debug state
	cursor         vmath.Vec2F
	mouseWorld     vmath.Vec2F
	collisionProbe vmath.Vec2F
	drawState      DrawState
	tracking       projectile.Index
	isTracking     bool
	clipboard      room.Index
	popup          Popup

	store    *room.Store
	audio    entity.SamplePlayer
	bank     audio.Bank
	rng      *rand.Rand
	template entity.Template
}

// NewGame creates a game with empty rooms and no live entities
func NewGame(opts Options) *Game {
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	g := &Game{
		Rooms: room.NewRow(),
		Projectiles: projectile.NewPool(projectile.Templates{
			Active: animation.NewFrames(parameter.SheetPlasmaBolt, parameter.PlasmaBoltFrameCount, parameter.PlasmaBoltFrameDuration),
			Poof:   animation.NewFrames(parameter.SheetPlasmaPop, parameter.PlasmaPopFrameCount, parameter.PlasmaPopFrameDuration),
		}),
		Gravity: opts.Gravity,
		Clock:   NewClock(tickLength(opts.FPS)),
		Debug:   opts.Debug,
		store:   opts.Store,
		audio:   player,
		bank:    opts.Bank,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		template: entity.Template{
			Idle:        animation.NewFrames(parameter.SheetIdle, parameter.IdleFrameCount, parameter.IdleFrameDuration),
			Walking:     animation.NewFrames(parameter.SheetWalking, parameter.WalkingFrameCount, parameter.WalkingFrameDuration),
			JumpSamples: opts.Bank.Jump,
		},
	}
	g.Clock.SetStepMode(opts.StepMode)
	g.Camera.Pos = g.Rooms.Room(0).Center()
	return g
}

func tickLength(fps int) float64 {
	if fps <= 0 {
		return parameter.SimulationDeltaTime
	}
	return 1.0 / float64(fps)
}

// LoadRooms fills the row from the store, or with the default layout when there is none
func (g *Game) LoadRooms() error {
	if g.store == nil {
		for i := 0; i < g.Rooms.Len(); i++ {
			room.Floor(g.Rooms.Room(room.Index(i)))
		}
		return nil
	}
	return g.store.LoadRow(g.Rooms)
}

// Player returns the player slot
func (g *Game) Player() *entity.Entity {
	return g.Entities.Get(parameter.PlayerEntityIndex)
}

// ResetEntities spawns the player in the first room and one enemy in each following room
func (g *Game) ResetEntities() {
	g.Entities.Spawn(parameter.PlayerEntityIndex, g.template, g.Rooms.Room(0).Center())
	for i := 0; i < parameter.EnemyCount; i++ {
		g.Entities.Spawn(entity.Index(parameter.EnemyEntityIndexOffset+i), g.template, g.Rooms.Room(room.Index(i+1)).Center())
	}
}

// Frame feeds real elapsed time to the clock and the popup, returns the ticks run
func (g *Game) Frame(elapsed time.Duration) int {
	n := g.Clock.Advance(elapsed, g.Step)
	g.popup.Update(elapsed)
	return n
}

// Step advances the simulation one fixed tick
func (g *Game) Step(dt float64) {
	player := g.Player()
	player.PointGunAt(g.Camera.ToWorld(g.cursor))

	if !g.Debug {
		g.stepEnemies()
	}

	g.Entities.Update(g.Gravity, dt, g.Rooms)
	g.Projectiles.Update(dt, g.Rooms)
	g.resolveHits()
}

// stepEnemies makes every enemy sharing the player's room aim and fire
func (g *Game) stepEnemies() {
	player := g.Player()
	playerRoom, ok := g.Rooms.IndexAt(player.Pos)
	if !ok {
		return
	}

	for i := 0; i < parameter.EnemyCount; i++ {
		index := entity.Index(parameter.EnemyEntityIndexOffset + i)
		enemy := g.Entities.Get(index)
		enemyRoom, ok := g.Rooms.IndexAt(enemy.Pos)
		if !ok || enemyRoom != playerRoom {
			continue
		}
		enemy.PointGunAt(player.Pos)
		g.Entities.Shoot(index, g.Projectiles)
	}
}

// resolveHits kills every Alive entity, other than the shooter, whose hitbox contains an Active projectile
// A projectile keeps testing the remaining entities after its first hit
func (g *Game) resolveHits() {
	g.Projectiles.Each(func(pi projectile.Index, p *projectile.Projectile) {
		if p.State != projectile.StateActive {
			return
		}
		g.Entities.Each(func(ei entity.Index, e *entity.Entity) {
			if e.State != entity.StateAlive || ei == p.Shooter {
				return
			}
			if vmath.RectContains(e.HitboxWorld(), p.Pos) {
				g.Projectiles.Kill(pi)
				e.Kill()
			}
		})
	})
}

// playerRoom returns the room holding the player, clamped to the row
func (g *Game) playerRoom() room.Index {
	pos := g.Player().Pos
	if index, ok := g.Rooms.IndexAt(pos); ok {
		return index
	}
	if pos.X < 0 {
		return 0
	}
	return room.Index(g.Rooms.Len() - 1)
}

// Notify shows a transient message
func (g *Game) Notify(format string, args ...any) {
	g.popup.Notify(format, args...)
	log.Printf(format, args...)
}

// Popup returns the visible notification
func (g *Game) Popup() (string, bool) {
	return g.popup.Text()
}
