// Command preview generates a creature from a genome and shows it in a
// window. Keys 1-6 switch animation states, space jumps, F toggles flight,
// V dives while flying, G toggles the grid.
//
// With -export the three surface maps are written as PNGs and the program
// exits without opening a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/amplice/bug-fight-sub000/internal/anim"
	"github.com/amplice/bug-fight-sub000/internal/body"
	"github.com/amplice/bug-fight-sub000/internal/debug"
	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/graphics"
	"github.com/amplice/bug-fight-sub000/internal/logger"
	"github.com/amplice/bug-fight-sub000/internal/palette"
	"github.com/amplice/bug-fight-sub000/internal/physics"
	"github.com/amplice/bug-fight-sub000/internal/previewcfg"
	"github.com/amplice/bug-fight-sub000/internal/render"
	"github.com/amplice/bug-fight-sub000/internal/scene"
	"github.com/amplice/bug-fight-sub000/internal/surface"
	"github.com/amplice/bug-fight-sub000/internal/voxel"
)

func main() {
	var (
		genomePath = flag.String("genome", "", "YAML genome file; empty rolls a random genome")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "seed for the random roll")
		mode       = flag.String("mode", "", "body representation: mesh or voxel (default from config)")
		mapSide    = flag.Int("mapside", 0, "surface map resolution (default from config)")
		scale      = flag.Float64("scale", 1, "overall creature scale")
		export     = flag.String("export", "", "write surface maps as <prefix>_{diffuse,normal,rough}.png and exit")
	)
	flag.Parse()

	log := logger.New()
	prefs, _ := previewcfg.Load()
	if *mode != "" {
		prefs.Mode = *mode
	}
	if *mapSide > 0 {
		prefs.MapSide = *mapSide
	}

	var g genome.Genome
	if *genomePath != "" {
		var err error
		g, err = genome.LoadFile(*genomePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load genome:", err)
			os.Exit(1)
		}
		log.Logf("loaded genome from %s", *genomePath)
	} else {
		g = genome.Roll(*seed)
		log.Logf("rolled genome with seed %d", *seed)
	}

	if *export != "" {
		if err := exportMaps(g, prefs.MapSide, *export); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(1)
		}
		log.Logf("exported surface maps to %s_*.png", *export)
		return
	}

	var gen body.Generator
	voxelMode := prefs.Mode == "voxel"
	if voxelMode {
		gen = &voxel.Builder{MapSide: prefs.MapSide}
	} else {
		gen = &body.Builder{MapSide: prefs.MapSide}
	}
	res, err := gen.Generate(g, float32(*scale))
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}
	log.Logf("spawned creature %s (%s / %s / %s)", res.ID, g.Thorax, g.Legs, g.Weapon)

	app := &previewApp{
		log:      log,
		prefs:    prefs,
		res:      res,
		animator: anim.New(res.Rig),
		renderer: render.New(),
		scene:    scene.New(),
		debug:    debug.New(),
		world:    physics.NewWorld(),
		intent:   anim.IntentIdle,
	}
	app.scene.SetGridVisible(prefs.GridVisible)
	app.debug.SetShowFPS(prefs.ShowFPS)
	app.debug.SetShowMemAlloc(prefs.ShowMemAlloc)

	s := float32(*scale) * g.Size
	app.body = physics.NewBody(
		mgl32.Vec3{0, 4 * s, 0},
		mgl32.Vec3{4 * s, 3 * s, 7 * s},
		g.BulkFactor(),
		false,
	)
	app.world.AddBody(app.body)

	if voxelMode {
		app.startPlayback()
	}

	graphics.Run("creature preview", 1280, 800, app.update, app.draw)

	app.renderer.Unload()
	if app.playbackStop != nil {
		close(app.playbackStop)
	}
	_ = previewcfg.Save(app.prefs)
}

type previewApp struct {
	log      *logger.Logger
	prefs    previewcfg.Prefs
	res      *body.Result
	animator *anim.Animator
	renderer *render.Renderer
	scene    *scene.Scene
	debug    *debug.Debug
	world    *physics.World
	body     *physics.Body
	intent   anim.Intent

	// Voxel playback: baked frames stream through the container from a
	// ticker goroutine; the draw loop reads whatever frame is latest.
	frames       voxel.Library
	container    *voxel.FrameContainer
	playbackCh   chan anim.Intent
	playbackStop chan struct{}
	voxelColors  [8]color.NRGBA
}

func (app *previewApp) startPlayback() {
	app.frames = voxel.Bake(app.res.Rig, voxel.DefaultFrameRate)
	app.container = &voxel.FrameContainer{}
	app.playbackCh = make(chan anim.Intent, 4)
	app.playbackStop = make(chan struct{})
	app.voxelColors = voxel.CellColors(app.res.Palette)

	go func() {
		tick := time.NewTicker(time.Second / voxel.DefaultFrameRate)
		defer tick.Stop()
		intent := anim.IntentIdle
		clock := float32(0)
		for {
			select {
			case <-app.playbackStop:
				return
			case next := <-app.playbackCh:
				if next != intent {
					intent = next
					clock = 0
				}
			case <-tick.C:
				if set := app.frames[intent]; set != nil {
					app.container.Publish(set.At(clock))
				}
				clock += 1.0 / voxel.DefaultFrameRate
			}
		}
	}()
}

var intentKeys = []struct {
	key    int32
	intent anim.Intent
}{
	{rl.KeyOne, anim.IntentIdle},
	{rl.KeyTwo, anim.IntentAttack},
	{rl.KeyThree, anim.IntentHit},
	{rl.KeyFour, anim.IntentDeath},
	{rl.KeyFive, anim.IntentVictory},
	{rl.KeySix, anim.IntentJump},
}

func (app *previewApp) update() {
	dt := rl.GetFrameTime()
	app.scene.Update()

	for _, ik := range intentKeys {
		if rl.IsKeyPressed(ik.key) && app.intent != ik.intent {
			app.intent = ik.intent
			app.log.Logf("state -> %s", ik.intent)
		}
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.prefs.GridVisible = !app.prefs.GridVisible
		app.scene.SetGridVisible(app.prefs.GridVisible)
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.body.Flying = !app.body.Flying
		if app.body.Flying {
			app.body.Velocity[1] = 10
		}
	}
	app.body.Diving = app.body.Flying && rl.IsKeyDown(rl.KeyV)
	if rl.IsKeyPressed(rl.KeySpace) {
		app.body.Launch(15)
	}

	// WASD drives horizontal velocity directly; release stops.
	var vx, vz float32
	speed := float32(8)
	if rl.IsKeyDown(rl.KeyW) {
		vz += speed
	}
	if rl.IsKeyDown(rl.KeyS) {
		vz -= speed
	}
	if rl.IsKeyDown(rl.KeyA) {
		vx -= speed
	}
	if rl.IsKeyDown(rl.KeyD) {
		vx += speed
	}
	app.body.Velocity[0] = vx
	app.body.Velocity[2] = vz

	app.world.Step(dt)

	if app.container != nil {
		select {
		case app.playbackCh <- app.intent:
		default:
		}
		if f := app.container.Latest(); f != nil {
			voxel.Apply(f, app.res.Root)
		}
	} else {
		app.animator.Update(dt, app.intent, app.body.Signal())
	}

	modeName := "mesh"
	if app.container != nil {
		modeName = "voxel"
	}
	app.debug.SetStatus(fmt.Sprintf("%s | %s | %.2fs", modeName, app.intent, app.animator.Clock()))
}

func (app *previewApp) draw() {
	cam := app.scene.Camera
	app.renderer.SetView(
		[3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z},
		[3]float32{0.5, 1, 0.3},
	)

	app.scene.Begin()
	world := mgl32.Translate3D(
		app.body.Position.X(),
		app.body.Position.Y()-app.body.HalfExtents.Y(),
		app.body.Position.Z(),
	)
	if app.container != nil {
		app.renderer.DrawVoxels(app.res.Root, world, app.voxelColors)
	} else {
		app.renderer.DrawCreature(app.res.Root, world)
	}
	app.scene.End()

	app.debug.Draw()
}

// exportMaps synthesizes the genome's surface maps and writes them as PNGs.
func exportMaps(g genome.Genome, side int, prefix string) error {
	g = g.Normalized()
	if side <= 0 {
		side = surface.DefaultSide
	}
	pal := palette.Derive(g)
	maps := surface.Synthesize(g.Texture, pal.Primary, pal.Secondary, g.Seed, side)

	files := []struct {
		suffix string
		img    image.Image
	}{
		{"diffuse", maps.Diffuse},
		{"normal", maps.Normal},
		{"rough", maps.Roughness},
	}
	for _, f := range files {
		if err := writePNG(prefix+"_"+f.suffix+".png", f.img); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
