// Package window runs the game in a desktop window through Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/ya-breaker/internal/core"
	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
)

// How long a status message stays on screen, in frames.
const statusFrames = 120

// Muter is a sound player whose output can be switched off.
type Muter interface {
	ToggleMute() bool
}

// Options configure the window frontend.
type Options struct {
	Config    core.RuntimeConfig
	Sound     core.SoundPlayer // nil plays nothing
	Sprites   FrameSource      // nil draws no sprites
	Logger    *log.Logger
	Clipboard func(string) error     // nil uses the system clipboard
	Paste     func() (string, error) // nil reads the system clipboard
}

// Controls are the edge-triggered commands read once per frame.
type Controls struct {
	Retry bool
	Mute  bool
	Copy  bool
	Paste bool
	Quit  bool
}

// Window implements ebiten.Game. Update runs one game frame into a recorder;
// Draw replays it so the simulation never depends on the draw rate.
type Window struct {
	game     *yabreaker.Game
	rec      core.Recorder
	sound    core.SoundPlayer
	sprites  FrameSource
	textures *textureCache
	logger   *log.Logger
	copyText  func(string) error
	pasteText func() (string, error)
	tickRate int

	frames      int
	muted       bool
	status      string
	statusUntil int
}

// New creates the window frontend for a game.
func New(game *yabreaker.Game, opts Options) *Window {
	sound := opts.Sound
	if sound == nil {
		sound = core.NopPlayer{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	pasteText := opts.Paste
	if pasteText == nil {
		pasteText = clipboard.ReadAll
	}
	tickRate := opts.Config.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	return &Window{
		game:      game,
		sound:     sound,
		sprites:   opts.Sprites,
		textures:  newTextureCache(),
		logger:    logger,
		copyText:  copyText,
		pasteText: pasteText,
		tickRate:  tickRate,
		muted:     opts.Config.Muted,
	}
}

// Update reads the keyboard and mouse and advances one frame.
func (w *Window) Update() error {
	retry := inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		w.retryClicked()

	ctl := Controls{
		Retry: retry,
		Mute:  inpututil.IsKeyJustPressed(ebiten.KeyM),
		Copy:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		Paste: inpututil.IsKeyJustPressed(ebiten.KeyV),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	if ctl.Quit {
		return ebiten.Termination
	}
	w.Step(heldInput(ebiten.IsKeyPressed), ctl)
	return nil
}

// heldInput maps held keys to the directional actions.
func heldInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	return in
}

func (w *Window) retryClicked() bool {
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return w.game.InterstitialVisible() && w.retryButton().Contains(float64(x), float64(y))
}

// Step applies the frame's commands and runs one game frame.
func (w *Window) Step(in core.InputFrame, ctl Controls) {
	w.frames++

	if ctl.Mute {
		if muter, ok := w.sound.(Muter); ok {
			w.muted = muter.ToggleMute()
			if w.muted {
				w.setStatus("sound off")
			} else {
				w.setStatus("sound on")
			}
		}
	}

	if ctl.Copy {
		w.copySnapshot()
	}
	if ctl.Paste {
		w.pasteSnapshot()
	}

	var events []yabreaker.Event
	if ctl.Retry && w.game.InterstitialVisible() {
		events = append(events, w.game.Retry()...)
	}

	events = append(events, w.game.Frame(&w.rec, in)...)
	yabreaker.PlaySounds(w.sound, events)

	for _, e := range events {
		switch e.Kind {
		case yabreaker.EventInterstitialShown, yabreaker.EventInterstitialHidden:
			w.logger.Info(e.Kind.String(), "fails", e.Fails, "tick", e.Tick)
		case yabreaker.EventBallLost:
			w.logger.Debug(e.Kind.String(), "fails", e.Fails, "tick", e.Tick)
		}
	}
}

// copySnapshot puts a YAML dump of the game state on the clipboard.
func (w *Window) copySnapshot() {
	snap := w.game.Snapshot()
	dump, err := snap.YAML()
	if err == nil {
		err = w.copyText(dump)
	}
	if err != nil {
		w.logger.Warn("could not copy snapshot", "error", err)
		w.setStatus("copy failed")
		return
	}
	w.logger.Debug("snapshot copied", "hash", fmt.Sprintf("%016x", snap.Hash()), "tick", snap.Tick)
	w.setStatus("snapshot copied")
}

// pasteSnapshot restores the game from a YAML dump on the clipboard.
func (w *Window) pasteSnapshot() {
	dump, err := w.pasteText()
	if err != nil {
		w.logger.Warn("could not read clipboard", "error", err)
		w.setStatus("paste failed")
		return
	}
	snap, err := yabreaker.ParseSnapshot(dump)
	if err != nil {
		w.logger.Warn("clipboard holds no snapshot", "error", err)
		w.setStatus("paste failed")
		return
	}
	w.game.ApplySnapshot(snap)
	w.logger.Info("snapshot restored", "hash", fmt.Sprintf("%016x", snap.Hash()), "tick", snap.Tick)
	w.setStatus("snapshot restored")
}

func (w *Window) setStatus(msg string) {
	w.status = msg
	w.statusUntil = w.frames + statusFrames
}

// Status returns the message currently shown in the HUD.
func (w *Window) Status() string {
	if w.frames >= w.statusUntil {
		return ""
	}
	return w.status
}

// Draw replays the last frame, then draws the HUD and the interstitial.
func (w *Window) Draw(screen *ebiten.Image) {
	surface := &ebitenSurface{
		dst:      screen,
		sprites:  w.sprites,
		textures: w.textures,
		elapsed:  time.Duration(w.frames) * time.Second / time.Duration(w.tickRate),
	}
	w.rec.Replay(surface)

	st := w.game.State()
	hud := fmt.Sprintf("fails: %d  blocks: %d", st.Fails, st.BlocksLeft)
	if w.muted {
		hud += "  [muted]"
	}
	if s := w.Status(); s != "" {
		hud += "  " + s
	}
	drawText(screen, hud, 8, 490, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	if st.Interstitial {
		w.drawInterstitial(screen, st)
	}
}

// Interstitial layout in surface units.
func (w *Window) panel() core.Rect {
	sw, sh := w.game.SurfaceSize()
	return core.NewRect(sw/2-150, sh/2-90, 300, 180)
}

func (w *Window) retryButton() core.Rect {
	p := w.panel()
	return core.NewRect(p.X+100, p.Bottom()-60, 100, 36)
}

func (w *Window) drawInterstitial(screen *ebiten.Image, st yabreaker.State) {
	sw, sh := w.game.SurfaceSize()
	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{A: 200}, false)

	p := w.panel()
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), color.RGBA{R: 30, G: 30, B: 40, A: 255}, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 2, core.ColorOrange.RGBA(), false)

	drawText(screen, "Take a break", int(p.X)+106, int(p.Y)+36, core.ColorOrange.RGBA())
	drawText(screen, fmt.Sprintf("%d balls lost so far", st.Fails), int(p.X)+80, int(p.Y)+70, color.White)

	b := w.retryButton()
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), color.RGBA{R: 0x22, G: 0x88, B: 0x22, A: 0xFF}, false)
	drawText(screen, "Retry", int(b.X)+32, int(b.Y)+23, color.White)
}

// drawText is a small wrapper that uses the classic text.Draw signature
func drawText(img *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, col)
}

// Layout keeps the logical screen at the game's surface size.
func (w *Window) Layout(_, _ int) (int, int) {
	sw, sh := w.game.SurfaceSize()
	return int(sw), int(sh)
}

// Run opens the window and blocks until it is closed.
func Run(game *yabreaker.Game, opts Options) error {
	w := New(game, opts)
	sw, sh := game.SurfaceSize()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(sw), int(sh))
	ebiten.SetTPS(w.tickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
