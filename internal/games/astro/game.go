// Package astro implements a toroidal asteroids game: steer a ship,
// shoot drifting rocks, survive waves that grow each level.
package astro

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/registry"
)

func init() {
	registry.Register("astro", func() registry.Game {
		return newConfigured("astro", "Astro", false)
	})
	registry.Register("astro_hard", func() registry.Game {
		return newConfigured("astro_hard", "Astro (Hard)", true)
	})
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the
// loaded config. Unknown names fall back to the config as written.
func SetDifficultyPreset(preset string) {
	if config.ValidPreset(preset) {
		difficultyPreset = config.DifficultyPreset(preset)
	} else {
		difficultyPreset = ""
	}
}

// Game adapts the pure simulation to the platform's Game interface:
// it translates input frames into intents, fixes the tick length, and
// projects world coordinates into screen cells.
type Game struct {
	id    string
	title string
	tun   Tuning

	// Configured games resolve their tuning from the YAML config on
	// every Reset; tests construct games with a fixed tuning instead.
	fromConfig bool
	hard       bool

	cfg    core.RuntimeConfig
	world  *World
	dt     float64
	paused bool
}

// New creates a game instance with the given identity and balance.
func New(id, title string, tun Tuning) *Game {
	g := &Game{id: id, title: title, tun: tun}
	g.Reset(core.DefaultConfig())
	return g
}

// newConfigured creates a game that loads its tuning from the config
// chain, applying the difficulty preset and hard-mode overlay.
func newConfigured(id, title string, hard bool) *Game {
	g := &Game{id: id, title: title, fromConfig: true, hard: hard}
	g.Reset(core.DefaultConfig())
	return g
}

// loadTuning resolves the effective tuning from the config chain.
func loadTuning(hard bool) Tuning {
	cfg, err := config.LoadAstro(configPath)
	if err != nil {
		cfg = config.DefaultAstroConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAstroPreset(&cfg, difficultyPreset)
	}

	t := Tuning{
		WorldW: cfg.World.Width,
		WorldH: cfg.World.Height,

		PlayerThrust: cfg.Player.Thrust,
		TurnRate:     cfg.Player.TurnRate,
		MaxVel:       cfg.Player.MaxVel,

		ShotSpeed:    cfg.Shots.Speed,
		ShotCooldown: cfg.Shots.Cooldown,
		ShotLife:     cfg.Shots.Life,

		MaxRockVel:     cfg.Rocks.MaxVel,
		InitialRocks:   cfg.Rocks.Initial,
		RocksPerLevel:  cfg.Rocks.PerLevel,
		WaveGrowth:     cfg.Difficulty.WaveGrowth,
		SpawnMinRadius: cfg.Rocks.SpawnMinRadius,
		SpawnMaxRadius: cfg.Rocks.SpawnMaxRadius,

		PlayerBBox: cfg.Player.BBox,
		RockBBox:   cfg.Rocks.BBox,
		ShotBBox:   cfg.Shots.BBox,
	}
	if hard {
		t = harden(t)
	}
	return t
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes the game state for a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	if g.fromConfig {
		g.tun = loadTuning(g.hard)
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.world = NewWorld(g.tun, rng)
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.world.GameOver() {
		g.paused = !g.paused
	}

	if g.world.GameOver() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.cfg)
		}
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	intent := Intent{Fire: in.Has(core.ActionFire)}
	if in.Has(core.ActionTurnLeft) {
		intent.TurnAxis -= 1
	}
	if in.Has(core.ActionTurnRight) {
		intent.TurnAxis += 1
	}
	if in.Has(core.ActionThrust) {
		intent.ThrustAxis = 1
	}

	events := g.world.Step(g.dt, intent)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.Level(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// Render draws the world and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	for _, r := range g.world.Rocks() {
		x, y := g.project(r.Pos, dst)
		dst.SetCell(x, y, 'O', core.ColorYellow)
	}
	for _, s := range g.world.Shots() {
		x, y := g.project(s.Pos, dst)
		dst.SetCell(x, y, '•', core.ColorRed)
	}

	p := g.world.Player()
	px, py := g.project(p.Pos, dst)
	dst.SetCell(px, py, shipGlyph(p.Facing), core.ColorCyan)

	hud := fmt.Sprintf(" Score: %d  Level: %d ", g.world.Score(), g.world.Level())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if g.world.GameOver() {
		dst.DrawTextCentered(dst.Height()/2, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Final score: %d", g.world.Score()))
		dst.DrawTextCentered(dst.Height()/2+2, "Press R to restart, B for menu")
	} else if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// project maps a world position onto screen cells. The world is
// origin-centered with Y up; the screen is top-left-origin with Y down,
// so the Y axis flips before scaling down to cell resolution.
func (g *Game) project(pos core.Vec2, dst *core.Screen) (int, int) {
	sx := pos.X + g.tun.WorldW/2
	sy := g.tun.WorldH - (pos.Y + g.tun.WorldH/2)

	x := int(sx / g.tun.WorldW * float64(dst.Width()))
	y := int(sy / g.tun.WorldH * float64(dst.Height()))

	return core.Clamp(x, 0, dst.Width()-1), core.Clamp(y, 0, dst.Height()-1)
}

// shipGlyph picks an arrow for the nearest quarter-turn of the facing.
// Facing 0 points up and increases clockwise on screen.
func shipGlyph(facing float64) rune {
	sector := int(math.Round(facing/(math.Pi/2))) % 4
	if sector < 0 {
		sector += 4
	}
	switch sector {
	case 0:
		return '▲'
	case 1:
		return '▶'
	case 2:
		return '▼'
	default:
		return '◀'
	}
}
