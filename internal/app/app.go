//go:build ebiten

package app

import (
	"image/color"
	"log"
	"strconv"
	"time"

	"zlife/internal/core"
	"zlife/internal/render"
	"zlife/internal/snapshot"
	"zlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *core.FramePacer
	camera  render.Camera

	screenW, screenH int

	running  bool
	tickOnce bool
	panning  bool
	lastX    int
	lastY    int

	openPath string
	savePath string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(),
		overlay:  ui.NewOverlay(),
		pacer:    core.NewFramePacer(cfg.FramesPerTick),
		camera:   render.NewCamera(sim.Size().W, cfg.WindowW, cfg.WindowH),
		screenW:  cfg.WindowW,
		screenH:  cfg.WindowH,
		openPath: cfg.OpenPath,
		savePath: cfg.SavePath,
	}
}

// Open loads the board at path and recentres the view. Failures are logged
// and leave the current board in place.
func (g *Game) Open(path string) {
	if path == "" {
		log.Printf("open: no board file configured (use -open)")
		return
	}
	grid, err := snapshot.Load(path, g.sim.Grid())
	if err != nil {
		log.Printf("open %s: %v", path, err)
		return
	}
	g.sim.SetGrid(grid)
	g.camera.Center(grid.Size(), g.screenW, g.screenH)
	log.Printf("loaded %s (%dx%d, %d alive)", path, grid.Size(), grid.Size(), grid.Population())
}

// Save writes the board to the configured save path.
func (g *Game) Save() {
	if g.savePath == "" {
		log.Printf("save: no board file configured (use -save)")
		return
	}
	path, err := snapshot.Save(g.savePath, g.sim.Grid())
	if err != nil {
		log.Printf("save %s: %v", path, err)
		return
	}
	log.Printf("saved %s", path)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	if ebiten.IsFocused() {
		g.handlePan()
	}
	g.handleMouse()
	g.overlay.Update()

	if (g.running && g.pacer.Ready()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.Open(g.openPath)
	} else if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pacer.Faster()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.pacer.Slower()
	}
}

func (g *Game) handlePan() {
	step := g.camera.PanStep()
	if ebiten.IsKeyPressed(ebiten.KeyH) {
		g.camera.Pan(step, 0)
	} else if ebiten.IsKeyPressed(ebiten.KeyL) {
		g.camera.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		g.camera.Pan(0, step)
	} else if ebiten.IsKeyPressed(ebiten.KeyJ) {
		g.camera.Pan(0, -step)
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if _, dy := ebiten.Wheel(); dy != 0 {
		delta := 1
		if dy < 0 {
			delta = -1
		}
		g.camera.Zoom(delta, mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.panning = true
		g.lastX, g.lastY = mx, my
	}
	if g.panning {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.panning = false
		} else {
			g.camera.Pan(g.lastX-mx, g.lastY-my)
			g.lastX, g.lastY = mx, my
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		grid := g.sim.Grid()
		if x, y, ok := g.camera.CellAt(mx, my, grid.Size()); ok {
			c, _ := grid.CursorAt(x, y)
			c.Toggle()
		}
	}
}

// Draw renders the board and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.painter.Draw(screen, g.sim.Grid(), g.camera)
	g.overlay.Draw(screen, g.status())
}

func (g *Game) status() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if provider, ok := g.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	state := "paused"
	if g.running {
		state = "running"
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "View",
		Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeBool, Value: state},
			{Key: "fpt", Label: "Frames per tick", Type: core.ParamTypeInt, Value: strconv.Itoa(g.pacer.FramesPerTick())},
			{Key: "cell", Label: "Cell size", Type: core.ParamTypeInt, Value: strconv.Itoa(g.camera.CellSize)},
		},
	})
	return snap
}

// Layout tracks the window size so the camera covers the whole screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
