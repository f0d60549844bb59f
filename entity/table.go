package entity

import (
	"fmt"

	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// Index is the stable identity of an entity slot
type Index int

// Table is the fixed entity arena, slots are reinitialized in place and never reallocated
type Table struct {
	slots [parameter.EntitiesCount]Entity
}

// Len returns the table capacity
func (t *Table) Len() int {
	return len(t.slots)
}

// InBounds checks an index against the table capacity
func (t *Table) InBounds(index Index) bool {
	return 0 <= index && int(index) < len(t.slots)
}

// Get returns the slot at index, panics on an out-of-bounds index
func (t *Table) Get(index Index) *Entity {
	if !t.InBounds(index) {
		panic(fmt.Sprintf("entity: index %d out of table bounds [0, %d)", index, len(t.slots)))
	}
	return &t.slots[index]
}

// Spawn reinitializes a slot as an Alive entity
func (t *Table) Spawn(index Index, tmpl Template, pos vmath.Vec2F) {
	t.Get(index).Spawn(tmpl, pos)
}

// Shoot fires the entity's weapon along its aim direction
// Rejected unless Alive with an expired cooldown
func (t *Table) Shoot(index Index, spawner Spawner) bool {
	e := t.Get(index)
	if e.State != StateAlive {
		return false
	}
	if e.CooldownWeapon > 0 {
		return false
	}

	spawner.Spawn(e.Pos, vmath.V2Scale(e.GunDir, parameter.ProjectileSpeed), index)
	e.CooldownWeapon = parameter.EntityCooldownWeapon
	return true
}

// Update advances every slot one tick
func (t *Table) Update(gravity vmath.Vec2F, dt float64, collider Collider) {
	for i := range t.slots {
		t.slots[i].Update(gravity, dt, collider)
	}
}

// Each visits every slot in index order
func (t *Table) Each(fn func(Index, *Entity)) {
	for i := range t.slots {
		fn(Index(i), &t.slots[i])
	}
}

// CountAlive returns the number of Alive slots
func (t *Table) CountAlive() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].State == StateAlive {
			n++
		}
	}
	return n
}
