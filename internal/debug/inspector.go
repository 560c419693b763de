// Package debug is an optional terminal inspector: it runs the
// emulator at frame rate inside a tcell screen, drawing the
// framebuffer as shade characters (two pixel rows per text row)
// alongside live register state.
package debug

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	gogb "github.com/mattjamison/gogb"
	"github.com/mattjamison/gogb/internal/video"
)

const frameTime = time.Second / 60

// Inspector drives an emulator interactively in the terminal.
type Inspector struct {
	emu    *gogb.Emulator
	screen tcell.Screen

	paused  bool
	stepReq bool
}

// NewInspector wraps an emulator for interactive inspection.
func NewInspector(emu *gogb.Emulator) *Inspector {
	return &Inspector{emu: emu}
}

// Run owns the terminal until the user quits (q or Escape).
func (i *Inspector) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	i.screen = screen
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if quit := i.handleEvent(ev); quit {
				return nil
			}
		case <-ticker.C:
			if !i.paused {
				i.emu.RunFrame()
			} else if i.stepReq {
				i.stepReq = false
				i.emu.Step()
			}
			i.draw()
		}
	}
}

func (i *Inspector) handleEvent(ev tcell.Event) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		i.tapKey(gogb.KeyUp)
	case tcell.KeyDown:
		i.tapKey(gogb.KeyDown)
	case tcell.KeyLeft:
		i.tapKey(gogb.KeyLeft)
	case tcell.KeyRight:
		i.tapKey(gogb.KeyRight)
	case tcell.KeyEnter:
		i.tapKey(gogb.KeyStart)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		i.tapKey(gogb.KeySelect)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'z':
			i.tapKey(gogb.KeyA)
		case 'x':
			i.tapKey(gogb.KeyB)
		case ' ':
			i.paused = !i.paused
		case 's':
			i.stepReq = true
		}
	}
	return false
}

// tapKey presses and schedules a release a few frames later; terminals
// only deliver key-down events, so holds cannot be tracked precisely.
func (i *Inspector) tapKey(key gogb.Key) {
	i.emu.PressKey(key)
	time.AfterFunc(frameTime*4, func() { i.emu.ReleaseKey(key) })
}

var shadeRunes = []rune{' ', '░', '▒', '▓', '█'}

func luminance(px uint32) int {
	r := (px >> 16) & 0xFF
	g := (px >> 8) & 0xFF
	b := px & 0xFF
	return int((r*299 + g*587 + b*114) / 1000)
}

func (i *Inspector) draw() {
	i.screen.Clear()

	fb := i.emu.Framebuffer()
	// two vertical pixels per text row
	for y := 0; y < video.FramebufferHeight; y += 2 {
		for x := 0; x < video.FramebufferWidth; x++ {
			lum := (luminance(fb.At(x, y)) + luminance(fb.At(x, y+1))) / 2
			shade := shadeRunes[len(shadeRunes)-1-lum*(len(shadeRunes)-1)/255]
			i.screen.SetContent(x, y/2, shade, nil, tcell.StyleDefault)
		}
	}

	s := i.emu.CPU().State()
	status := fmt.Sprintf(
		"PC=%04X SP=%04X AF=%02X%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X IME=%v t=%d",
		s.PC, s.SP, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.IME, i.emu.TCycles())
	if i.paused {
		status += "  [paused: s=step, space=resume]"
	}
	row := video.FramebufferHeight/2 + 1
	for col, r := range status {
		i.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
	}

	i.screen.Show()
}
