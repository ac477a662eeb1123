package tui

import (
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/sim"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	BirdBody   = 'o'
	CactusChar = '▓'
)

// groundPattern scrolls under the player to sell the motion. Indexed by
// world column so the texture moves with the field, not the screen.
var groundPattern = []rune("════╧═══════╧══════╧═════╧═══")

// The simulation runs in a fixed 240x160 pixel field; the renderer maps
// pixels onto whatever cell grid the terminal gives us.
func scaleX(dst *core.Screen, x int) int {
	return x * dst.Width() / sim.FieldW
}

func scaleY(dst *core.Screen, y int) int {
	return y * dst.Height() / sim.FieldH
}

// DrawGame renders one simulation snapshot. animInterval controls how many
// frames each run-cycle pose is held.
func DrawGame(dst *core.Screen, snap sim.Snapshot, animInterval uint32) {
	dst.Clear()

	animPhase := 0
	if animInterval > 0 && (snap.Frame/animInterval)%2 == 1 {
		animPhase = 1
	}

	drawGround(dst, snap.ScrollX)

	for _, e := range snap.Enemies {
		switch e.Kind {
		case sim.KindBird:
			drawBird(dst, e, animPhase)
		case sim.KindCactus:
			drawCactus(dst, e)
		}
	}

	drawDino(dst, snap, animPhase)
	drawHUD(dst, snap)

	switch snap.State {
	case sim.StatePause:
		drawCenteredMessage(dst, "PAUSED", "press p to resume")
	case sim.StateOver:
		drawCenteredMessage(dst, "GAME OVER", "space restarts, q quits")
	}
}

// drawGround draws the scrolling ground line.
func drawGround(dst *core.Screen, scrollX int) {
	gy := scaleY(dst, sim.GroundY)
	if gy >= dst.Height() {
		gy = dst.Height() - 1
	}

	offset := scrollX * dst.Width() / sim.FieldW
	for x := 0; x < dst.Width(); x++ {
		idx := (x + offset) % len(groundPattern)
		dst.SetCell(x, gy, groundPattern[idx], core.ColorGray)
	}
}

// drawDino renders the player. The sprite's feet sit on the bottom of the
// 32px sprite cell so the grounded pose touches the ground line.
func drawDino(dst *core.Screen, snap sim.Snapshot, animPhase int) {
	box := sim.PlayerHitBox().Translate(snap.PlayerX, snap.PlayerY)
	baseX := scaleX(dst, box.X)
	footY := scaleY(dst, box.Bottom())
	baseY := footY - 2

	color := core.ColorGreen
	if snap.State == sim.StateOver {
		color = core.ColorRed
	}

	// Head and body
	dst.SetCell(baseX+1, baseY, DinoHead, color)
	dst.SetCell(baseX+2, baseY, DinoBody, color)
	dst.SetCell(baseX, baseY+1, DinoBody, color)
	dst.SetCell(baseX+1, baseY+1, DinoBody, color)
	dst.SetCell(baseX+2, baseY+1, DinoBody, color)

	// Legs: run cycle on the ground, tucked in the air
	switch {
	case snap.Jumping:
		dst.SetCell(baseX, baseY+2, DinoLeg1, color)
		dst.SetCell(baseX+1, baseY+2, DinoLeg2, color)
	case animPhase == 0:
		dst.SetCell(baseX, baseY+2, DinoLeg1, color)
		dst.SetCell(baseX+2, baseY+2, DinoLeg2, color)
	default:
		dst.SetCell(baseX+1, baseY+2, DinoLeg1, color)
		dst.SetCell(baseX+2, baseY+2, DinoLeg2, color)
	}
}

// drawBird renders a flying enemy with a two-pose wing flap.
func drawBird(dst *core.Screen, e sim.EnemyView, animPhase int) {
	box := sim.KindBird.HitBox().Translate(e.X, e.Y)
	x := scaleX(dst, box.X)
	y := scaleY(dst, box.Y)

	if animPhase == 0 {
		dst.SetCell(x, y, DinoLeg2, core.ColorCyan)
		dst.SetCell(x+1, y, BirdBody, core.ColorCyan)
		dst.SetCell(x+2, y, DinoLeg1, core.ColorCyan)
	} else {
		dst.SetCell(x, y, DinoLeg1, core.ColorCyan)
		dst.SetCell(x+1, y, BirdBody, core.ColorCyan)
		dst.SetCell(x+2, y, DinoLeg2, core.ColorCyan)
	}
}

// drawCactus fills the obstacle's scaled hitbox.
func drawCactus(dst *core.Screen, e sim.EnemyView) {
	box := sim.KindCactus.HitBox().Translate(e.X, e.Y)
	x0 := scaleX(dst, box.X)
	y0 := scaleY(dst, box.Y)
	x1 := scaleX(dst, box.Right())
	y1 := scaleY(dst, box.Bottom())

	// A cactus is always at least one cell even on tiny terminals.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, CactusChar, core.ColorGreen)
		}
	}
}

// drawHUD renders the score readouts in the top-right corner.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	score := Sanitize("SCORE " + FormatScore(snap.Score))
	dst.DrawTextColored(AlignX(dst.Width()-1, len(score), AlignRight), 0, score, core.ColorBrightWhite)

	hi := snap.HighScore
	if snap.Score > hi {
		hi = snap.Score
	}
	hiText := Sanitize("HI " + FormatScore(hi))
	dst.DrawTextColored(AlignX(dst.Width()-1, len(hiText), AlignRight), 1, hiText, core.ColorGray)

	if snap.SpeedLevel > 0 {
		lv := Sanitize(sprintLevel(snap.SpeedLevel))
		dst.DrawTextColored(1, 0, lv, core.ColorYellow)
	}
}

func sprintLevel(level int) string {
	digits := ""
	for level > 0 {
		digits = string(rune('0'+level%10)) + digits
		level /= 10
	}
	return "LV " + digits
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	title = Sanitize(title)
	subtitle = Sanitize(subtitle)

	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
