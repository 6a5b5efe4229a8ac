package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/pedrocgb/Medieval-Project/internal/game/equipment"
	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

// RegisterModule installs the inv table into L. Items are addressed by InstanceID,
// grids by name, slots by their string value and rotations in degrees.
//
// Unknown grids, instances, items and slots raise Lua errors; operations the engine
// refuses return false or nil.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: inv global is defined in L.
func (r *Runner) RegisterModule(L *lua.LState) {
	inv := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"grid":        r.luaGrid,
		"spawn":       r.luaSpawn,
		"place":       r.luaPlace,
		"auto_place":  r.luaAutoPlace,
		"move":        r.luaMove,
		"move_rotate": r.luaMoveRotate,
		"rotate":      r.luaRotate,
		"remove":      r.luaRemove,
		"find_space":  r.luaFindSpace,
		"can_place":   r.luaCanPlace,
		"preview":     r.luaPreview,
		"stack":       r.luaStack,
		"transfer":    r.luaTransfer,
		"equip":       r.luaEquip,
		"auto_equip":  r.luaAutoEquip,
		"unequip":     r.luaUnequip,
		"equipped":    r.luaEquipped,
		"drop":        r.luaDrop,
		"item_at":     r.luaItemAt,
		"count":       r.luaCount,
		"render":      r.luaRender,
		"log":         r.luaLog,
	})
	L.SetGlobal("inv", inv)
}

func (r *Runner) gridArg(L *lua.LState, n int) *inventory.Grid {
	name := L.CheckString(n)
	g, ok := r.ws.Grid(name)
	if !ok {
		L.ArgError(n, "unknown grid "+name)
		return nil
	}
	return g
}

func (r *Runner) itemArg(L *lua.LState, n int) *inventory.ItemInstance {
	id := L.CheckString(n)
	it, ok := r.ws.Item(id)
	if !ok {
		L.ArgError(n, "unknown instance "+id)
		return nil
	}
	return it
}

func slotArg(L *lua.LState, n int) equipment.Slot {
	s := equipment.Slot(L.CheckString(n))
	if !s.Valid() {
		L.ArgError(n, "unknown slot "+string(s))
	}
	return s
}

// rotationArg reads a rotation in degrees at n, or returns def when the argument is absent.
func rotationArg(L *lua.LState, n int, def inventory.Rotation) inventory.Rotation {
	if L.Get(n) == lua.LNil {
		return def
	}
	return inventory.NormalizeRotation(L.CheckInt(n))
}

func pushItem(L *lua.LState, it *inventory.ItemInstance) {
	if it == nil {
		L.Push(lua.LNil)
		return
	}
	L.Push(lua.LString(it.InstanceID))
}

// inv.grid(name, width, height)
func (r *Runner) luaGrid(L *lua.LState) int {
	name := L.CheckString(1)
	if _, err := r.ws.NewGrid(name, L.CheckInt(2), L.CheckInt(3)); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// inv.spawn(item_id [, count]) -> instance_id
func (r *Runner) luaSpawn(L *lua.LState) int {
	it, err := r.ws.Spawn(L.CheckString(1), L.OptInt(2, 1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	pushItem(L, it)
	return 1
}

// inv.place(grid, id, x, y) -> bool
func (r *Runner) luaPlace(L *lua.LState) int {
	g, it := r.gridArg(L, 1), r.itemArg(L, 2)
	L.Push(lua.LBool(g.TryPlace(it, L.CheckInt(3), L.CheckInt(4))))
	return 1
}

// inv.auto_place(grid, id) -> bool
func (r *Runner) luaAutoPlace(L *lua.LState) int {
	g, it := r.gridArg(L, 1), r.itemArg(L, 2)
	L.Push(lua.LBool(g.TryAutoPlace(it)))
	return 1
}

// inv.move(id, x, y) -> bool
func (r *Runner) luaMove(L *lua.LState) int {
	it := r.itemArg(L, 1)
	x, y := L.CheckInt(2), L.CheckInt(3)
	owner := it.Owner()
	L.Push(lua.LBool(owner != nil && owner.TryMove(it, x, y)))
	return 1
}

// inv.move_rotate(id, x, y, rot) -> bool
func (r *Runner) luaMoveRotate(L *lua.LState) int {
	it := r.itemArg(L, 1)
	x, y := L.CheckInt(2), L.CheckInt(3)
	rot := inventory.NormalizeRotation(L.CheckInt(4))
	owner := it.Owner()
	L.Push(lua.LBool(owner != nil && owner.TryMoveAndRotate(it, x, y, rot)))
	return 1
}

// inv.rotate(id, rot) -> bool; only items outside any grid can be turned in place.
func (r *Runner) luaRotate(L *lua.LState) int {
	it := r.itemArg(L, 1)
	L.Push(lua.LBool(it.SetRotation(inventory.NormalizeRotation(L.CheckInt(2)))))
	return 1
}

// inv.remove(id) -> bool
func (r *Runner) luaRemove(L *lua.LState) int {
	it := r.itemArg(L, 1)
	owner := it.Owner()
	L.Push(lua.LBool(owner != nil && owner.Remove(it)))
	return 1
}

// inv.find_space(grid, id) -> x, y | nil
func (r *Runner) luaFindSpace(L *lua.LState) int {
	g, it := r.gridArg(L, 1), r.itemArg(L, 2)
	x, y, ok := g.TryFindSpaceFor(it)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(x))
	L.Push(lua.LNumber(y))
	return 2
}

// inv.can_place(grid, id, x, y [, rot]) -> bool
func (r *Runner) luaCanPlace(L *lua.LState) int {
	g, it := r.gridArg(L, 1), r.itemArg(L, 2)
	x, y := L.CheckInt(3), L.CheckInt(4)
	rot := rotationArg(L, 5, it.Rotation())
	L.Push(lua.LBool(g.CanPlaceWithRotation(it, x, y, rot, it.Owner() == g)))
	return 1
}

// inv.preview(grid, id, x, y [, rot]) -> fits, stack_target | nil
func (r *Runner) luaPreview(L *lua.LState) int {
	g, it := r.gridArg(L, 1), r.itemArg(L, 2)
	x, y := L.CheckInt(3), L.CheckInt(4)
	p := g.Preview(it, x, y, rotationArg(L, 5, it.Rotation()))
	L.Push(lua.LBool(p.Fits))
	pushItem(L, p.StackTarget)
	return 2
}

// inv.stack(source, target) -> bool
func (r *Runner) luaStack(L *lua.LState) int {
	src, dst := r.itemArg(L, 1), r.itemArg(L, 2)
	L.Push(lua.LBool(inventory.TryStackAcross(src, dst)))
	return 1
}

// inv.transfer(id, grid, x, y [, rot]) -> bool
func (r *Runner) luaTransfer(L *lua.LState) int {
	it, g := r.itemArg(L, 1), r.gridArg(L, 2)
	x, y := L.CheckInt(3), L.CheckInt(4)
	L.Push(lua.LBool(inventory.TryTransfer(it, g, x, y, rotationArg(L, 5, it.Rotation()))))
	return 1
}

// inv.equip(slot, id) -> bool; items held by a grid are swapped in from it.
func (r *Runner) luaEquip(L *lua.LState) int {
	slot, it := slotArg(L, 1), r.itemArg(L, 2)
	mgr := r.ws.Equipment()
	var ok bool
	if owner := it.Owner(); owner != nil {
		ok = mgr.TryEquipFromInventory(slot, it, owner)
	} else {
		ok = mgr.TryEquipDirect(slot, it)
	}
	L.Push(lua.LBool(ok))
	return 1
}

// inv.auto_equip(id) -> slot | nil
func (r *Runner) luaAutoEquip(L *lua.LState) int {
	it := r.itemArg(L, 1)
	slot, ok := r.ws.Equipment().TryAutoEquipFromInventory(it, it.Owner())
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(slot))
	return 1
}

// inv.unequip(slot, grid [, x, y]) -> bool; without coordinates the first free spot is used.
func (r *Runner) luaUnequip(L *lua.LState) int {
	slot, g := slotArg(L, 1), r.gridArg(L, 2)
	mgr := r.ws.Equipment()
	if L.Get(3) == lua.LNil {
		L.Push(lua.LBool(mgr.TryUnequipToFirstFit(slot, g)))
		return 1
	}
	L.Push(lua.LBool(mgr.TryUnequipToInventory(slot, g, L.CheckInt(3), L.CheckInt(4))))
	return 1
}

// inv.equipped(slot) -> id | nil
func (r *Runner) luaEquipped(L *lua.LState) int {
	pushItem(L, r.ws.Equipment().Equipped(slotArg(L, 1)))
	return 1
}

// inv.drop(slot) -> id | nil
func (r *Runner) luaDrop(L *lua.LState) int {
	pushItem(L, r.ws.Equipment().Drop(slotArg(L, 1)))
	return 1
}

// inv.item_at(grid, x, y) -> id | nil
func (r *Runner) luaItemAt(L *lua.LState) int {
	g := r.gridArg(L, 1)
	pushItem(L, g.GetItemAt(L.CheckInt(2), L.CheckInt(3)))
	return 1
}

// inv.count(id) -> stack count
func (r *Runner) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.itemArg(L, 1).StackCount()))
	return 1
}

// inv.render(grid) -> string
func (r *Runner) luaRender(L *lua.LState) int {
	L.Push(lua.LString(inventory.Render(r.gridArg(L, 1))))
	return 1
}

// inv.log(msg)
func (r *Runner) luaLog(L *lua.LState) int {
	r.logger.Info("scripting: script log", zap.String("msg", L.CheckString(1)))
	return 0
}
