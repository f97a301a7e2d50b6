package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/game"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// World units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide, so the vertical scale doubles to keep circles round.
const (
	worldPerCharX = 4.0
	worldPerCharY = 8.0
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawFrame renders one flight frame into the screen buffer: the visible
// world, the combatants, the HUD and any view overlay.
func DrawFrame(s *core.Screen, st *game.State, nowMs float64, score int, status string) {
	s.Clear()

	toX := func(wx float64) int { return int((wx - st.Camera.X) / worldPerCharX) }
	toY := func(wy float64) int { return int((wy - st.Camera.Y) / worldPerCharY) }

	// Background first, interactive objects over it.
	for _, o := range st.Visible {
		if o.Kind == world.KindStar {
			s.Set(toX(o.Pos.X), toY(o.Pos.Y), '.', core.ColorGray)
		}
	}
	for _, o := range st.Visible {
		switch o.Kind {
		case world.KindStation:
			drawStation(s, &o, toX, toY)
		case world.KindAsteroid:
			drawCircle(s, o.Pos, o.Size, 'o', core.ColorGray, toX, toY)
		case world.KindBeacon:
			s.Set(toX(o.Pos.X), toY(o.Pos.Y), '*', o.Col)
		}
	}

	drawBursts(s, st, nowMs, toX, toY)

	for _, pr := range st.Projectiles {
		s.Set(toX(pr.Pos.X), toY(pr.Pos.Y), '-', core.ColorBrightYellow)
	}
	for _, e := range st.Enemies {
		s.Set(toX(e.Pos.X), toY(e.Pos.Y), dirGlyph(e.Angle), core.ColorBrightRed)
	}
	if st.View != game.ViewDestroyed {
		s.Set(toX(st.Player.Pos.X), toY(st.Player.Pos.Y), dirGlyph(st.Player.Angle), core.ColorBrightWhite)
	}

	drawHUD(s, st, score, status)
	drawOverlay(s, st)
}

// drawStation renders the hull ring and the entrance marker at the current
// rotation angle.
func drawStation(s *core.Screen, o *world.Object, toX, toY func(float64) int) {
	drawCircle(s, o.Pos, o.Size, '#', o.Col, toX, toY)
	front := o.Pos.Add(core.FromAngle(o.Angle).Scale(o.Size))
	s.Set(toX(front.X), toY(front.Y), '+', core.ColorBrightGreen)
}

// drawCircle plots a circle outline in world coordinates.
func drawCircle(s *core.Screen, center core.Vec2, radius float64, r rune, c core.Color, toX, toY func(float64) int) {
	steps := int(radius)
	if steps < 12 {
		steps = 12
	}
	for i := 0; i < steps; i++ {
		a := core.TwoPi * float64(i) / float64(steps)
		p := center.Add(core.FromAngle(a).Scale(radius))
		s.Set(toX(p.X), toY(p.Y), r, c)
	}
}

// drawBursts interpolates burst particles from origin to their final
// position over each particle's delay and lifetime.
func drawBursts(s *core.Screen, st *game.State, nowMs float64, toX, toY func(float64) int) {
	for _, b := range st.Bursts {
		for _, p := range b.Particles {
			elapsed := nowMs - b.StartMs - p.DelayMs
			if elapsed < 0 || elapsed > p.DurationMs {
				continue
			}
			t := elapsed / p.DurationMs
			pos := b.Pos.Add(core.FromAngle(p.Angle).Scale(p.Distance * t))
			s.Set(toX(pos.X), toY(pos.Y), '*', b.Col)
		}
	}
}

// drawHUD writes the status line across the top of the screen.
func drawHUD(s *core.Screen, st *game.State, score int, status string) {
	shield := ""
	if st.Player.ShieldMax > 0 {
		filled := int(st.Player.Shield / st.Player.ShieldMax * 10)
		shield = strings.Repeat("=", filled) + strings.Repeat("-", 10-filled)
	}

	nav := "--"
	if st.NavSet {
		nav = string(dirGlyph(st.NavBearing)) + " " + st.NavTargetID
	}

	line := fmt.Sprintf(" CR %d | SHD [%s] | HOLD %d/%d | SCORE %d | NAV %s",
		st.Cash, shield, st.CargoUsed(), st.CargoCapacity(), score, nav)
	s.DrawText(0, 0, line, core.ColorBrightCyan)

	if status != "" {
		s.DrawText(0, 1, " "+status, core.ColorBrightYellow)
	}
}

// drawOverlay renders transition banners over the world view.
func drawOverlay(s *core.Screen, st *game.State) {
	mid := s.Height() / 2
	switch st.View {
	case game.ViewDocking:
		s.DrawTextCentered(mid, "DOCKING "+progressBar(st.Anim), core.ColorBrightGreen)
	case game.ViewUndocking:
		s.DrawTextCentered(mid, "UNDOCKING "+progressBar(st.Anim), core.ColorBrightGreen)
	case game.ViewDestroyed:
		s.DrawTextCentered(mid, "SHIP DESTROYED", core.ColorBrightRed)
		s.DrawTextCentered(mid+1, fmt.Sprintf("respawn in %.1fs", st.RespawnTimerMs/1000), core.ColorGray)
	case game.ViewWon:
		s.DrawTextCentered(mid, "CONTRACT COMPLETE", core.ColorBrightYellow)
		s.DrawTextCentered(mid+1, "press q to exit", core.ColorGray)
	}
}

func progressBar(a game.AnimationState) string {
	if a.Duration <= 0 {
		return ""
	}
	t := a.Progress / a.Duration
	if t > 1 {
		t = 1
	}
	filled := int(t * 12)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 12-filled) + "]"
}

// dirGlyph picks an eight-way arrow for a heading in radians.
func dirGlyph(angle float64) rune {
	glyphs := []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	sector := int(math.Floor(core.NormalizeAngle(angle)/(core.TwoPi/8) + 0.5))
	return glyphs[sector%8]
}
