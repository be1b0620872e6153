package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/purplenight/obj"
)

const stickDeadZone = 0.3

// pollInput samples keyboard and the first gamepad into b.
//
//	move:   A/D, arrows, left stick, d-pad
//	jump:   Space, Z, K, gamepad south
//	attack: X, J, gamepad east
func pollInput(b *obj.Buttons) {
	x := 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	jump := anyKey(ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyK)
	attack := anyKey(ebiten.KeyX, ebiten.KeyJ)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case leftX < -stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft):
			x = -1
		case leftX > stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight):
			x = 1
		}
		jump = jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		attack = attack || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightRight)
	}

	b.Update(obj.Tri(x), jump, attack)
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
