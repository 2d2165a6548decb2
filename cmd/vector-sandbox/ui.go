package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	errorBlinkMs  = 500
	maxOutput     = 200
	maxHistory    = 100
	frameInterval = 16 * time.Millisecond
	prompt        = "> "
)

type outputLine struct {
	text string
	err  bool
}

// Sandbox is the terminal front end around a Session
type Sandbox struct {
	screen        tcell.Screen
	width, height int
	session       *Session
	tones         *tonePlayer

	input   []rune
	output  []outputLine
	history []string
	histPos int

	inputError     bool
	inputErrorTime time.Time
}

func NewSandbox(session *Session, tones *tonePlayer) (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	sb := &Sandbox{
		screen:  screen,
		session: session,
		tones:   tones,
	}
	sb.width, sb.height = screen.Size()
	sb.print(outputLine{text: "type help for commands"})
	return sb, nil
}

func (sb *Sandbox) print(l outputLine) {
	sb.output = append(sb.output, l)
	if len(sb.output) > maxOutput {
		sb.output = sb.output[len(sb.output)-maxOutput:]
	}
}

// submit runs the input line; returns false when the session asked to quit
func (sb *Sandbox) submit() bool {
	line := string(sb.input)
	sb.input = sb.input[:0]
	if line != "" {
		sb.history = append(sb.history, line)
		if len(sb.history) > maxHistory {
			sb.history = sb.history[1:]
		}
	}
	sb.histPos = len(sb.history)
	sb.print(outputLine{text: prompt + line})

	out, err := sb.session.Exec(line)
	if errors.Is(err, errQuit) {
		return false
	}
	if err != nil {
		log.Printf("command %q: %v", line, err)
		sb.print(outputLine{text: err.Error(), err: true})
		sb.inputError = true
		sb.inputErrorTime = time.Now()
		sb.tones.fail()
		return true
	}

	for _, l := range splitLines(out) {
		sb.print(outputLine{text: l})
	}
	if out != "" {
		sb.tones.ok()
	}
	return true
}

func (sb *Sandbox) recall(delta int) {
	if len(sb.history) == 0 {
		return
	}
	sb.histPos += delta
	if sb.histPos < 0 {
		sb.histPos = 0
	}
	if sb.histPos >= len(sb.history) {
		sb.histPos = len(sb.history)
		sb.input = sb.input[:0]
		return
	}
	sb.input = []rune(sb.history[sb.histPos])
}

func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			return sb.submit()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(sb.input) > 0 {
				sb.input = sb.input[:len(sb.input)-1]
			}
		case tcell.KeyCtrlU:
			sb.input = sb.input[:0]
		case tcell.KeyUp:
			sb.recall(-1)
		case tcell.KeyDown:
			sb.recall(1)
		case tcell.KeyRune:
			sb.input = append(sb.input, ev.Rune())
		}

	case *tcell.EventResize:
		sb.width, sb.height = sb.screen.Size()
		sb.screen.Sync()
	}
	return true
}

// drawText writes s at (x, y) clipped to the screen width; returns the next column
func (sb *Sandbox) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if x+w > sb.width {
			break
		}
		sb.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func (sb *Sandbox) draw() {
	sb.screen.Clear()
	if sb.width <= 0 || sb.height < 4 {
		sb.screen.Show()
		return
	}

	header := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	state := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	v := sb.session.Current()
	sb.drawText(0, 0, fmt.Sprintf("vector-sandbox  kind: %s", v.Kind().Name()), header)
	sb.drawText(0, 1, "cart "+formatTriple(v.Cart()), state)
	sb.drawText(0, 2, "sph  "+sb.session.formatSph(), state)

	// Output scrolls up from just above the prompt
	promptY := sb.height - 1
	rows := promptY - 4
	start := len(sb.output) - rows
	if start < 0 {
		start = 0
	}
	y := 4
	for _, l := range sb.output[start:] {
		style := tcell.StyleDefault
		if l.err {
			style = errStyle
		}
		sb.drawText(0, y, l.text, style)
		y++
	}

	if sb.inputError && time.Since(sb.inputErrorTime).Milliseconds() > errorBlinkMs {
		sb.inputError = false
	}
	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if sb.inputError {
		promptStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	}
	x := sb.drawText(0, promptY, prompt, promptStyle)
	x = sb.drawText(x, promptY, string(sb.input), tcell.StyleDefault)
	sb.screen.ShowCursor(x, promptY)

	sb.screen.Show()
}

func (sb *Sandbox) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !sb.handleInput(ev) {
				return
			}
		case <-ticker.C:
			sb.draw()
		}
	}
}

func (sb *Sandbox) cleanup() {
	sb.tones.close()
	sb.screen.Fini()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
