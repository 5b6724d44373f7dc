package ui

import (
	"math/rand"
	"strings"

	"github.com/i474232898/skysense/internal/weather"
)

const (
	sceneWidth  = 30
	sceneHeight = 9

	rainDrops  = 18
	stormDrops = 10
	snowFlakes = 28
)

var (
	sunSprite = []string{
		`\ | /`,
		`- O -`,
		`/ | \`,
	}
	cloudSprite = []string{
		`  .--.  `,
		`.(    ).`,
		`(___.__)`,
	}
)

type particle struct {
	x, y  int
	speed int
}

// Scene is the decorative animation drawn next to the readings.
type Scene struct {
	theme     weather.Theme
	particles []particle
	glyph     rune
	frame     int
}

// NewScene lays out the sprites and particles for a theme.
func NewScene(theme weather.Theme, rng *rand.Rand) Scene {
	s := Scene{theme: theme}

	switch theme {
	case weather.ThemeRain:
		s.glyph = '|'
		s.particles = spawn(rng, rainDrops, 1, 2)
	case weather.ThemeThunderstorm:
		s.glyph = '/'
		s.particles = spawn(rng, stormDrops, 2, 3)
	case weather.ThemeSnow:
		s.glyph = '*'
		s.particles = spawn(rng, snowFlakes, 1, 1)
	}
	return s
}

func spawn(rng *rand.Rand, n, minSpeed, maxSpeed int) []particle {
	ps := make([]particle, n)
	for i := range ps {
		ps[i] = particle{
			x:     rng.Intn(sceneWidth),
			y:     3 + rng.Intn(sceneHeight-3),
			speed: minSpeed + rng.Intn(maxSpeed-minSpeed+1),
		}
	}
	return ps
}

// Step advances the animation by one frame.
func (s Scene) Step() Scene {
	next := Scene{theme: s.theme, glyph: s.glyph, frame: s.frame + 1}
	next.particles = make([]particle, len(s.particles))
	for i, p := range s.particles {
		p.y += p.speed
		if p.y >= sceneHeight {
			p.y = 3 + (p.y-sceneHeight)%(sceneHeight-3)
		}
		if s.theme == weather.ThemeSnow && next.frame%2 == 0 {
			p.x = (p.x + 1) % sceneWidth
		}
		next.particles[i] = p
	}
	return next
}

// Particles reports how many drops or flakes the scene animates.
func (s Scene) Particles() int {
	return len(s.particles)
}

// Render draws the scene as plain text, one line per row.
func (s Scene) Render() string {
	grid := make([][]rune, sceneHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", sceneWidth))
	}

	switch s.theme {
	case weather.ThemeClear:
		stamp(grid, sunSprite, 12, 2)
	case weather.ThemePartlyCloudy:
		stamp(grid, sunSprite, 2, 0)
		stamp(grid, cloudSprite, 8, 1)
		stamp(grid, cloudSprite, 19, 3)
	case weather.ThemeFog:
		stamp(grid, cloudSprite, 3, 0)
		stamp(grid, cloudSprite, 17, 0)
		for y := 4; y < sceneHeight; y += 2 {
			offset := (s.frame + y) % 3
			for x := offset; x < sceneWidth; x += 3 {
				grid[y][x] = '~'
			}
		}
	default:
		stamp(grid, cloudSprite, 3, 0)
		stamp(grid, cloudSprite, 17, 0)
	}

	for _, p := range s.particles {
		if p.y >= 0 && p.y < sceneHeight && p.x >= 0 && p.x < sceneWidth && grid[p.y][p.x] == ' ' {
			grid[p.y][p.x] = s.glyph
		}
	}

	if s.theme == weather.ThemeThunderstorm && s.frame%8 < 2 {
		stamp(grid, []string{` /`, `/_`, ` /`}, 13, 3)
	}

	lines := make([]string, sceneHeight)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func stamp(grid [][]rune, sprite []string, x, y int) {
	for dy, line := range sprite {
		row := y + dy
		if row < 0 || row >= len(grid) {
			continue
		}
		for dx, r := range []rune(line) {
			col := x + dx
			if col < 0 || col >= len(grid[row]) || r == ' ' {
				continue
			}
			grid[row][col] = r
		}
	}
}
