package view

import (
	"bytes"
	"cavelife/src/universe"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"io"
	"strings"
	"time"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	u        universe.Universe
	g        *gocui.Gui
	k        []keyBindings
	logger   *log.Logger
	renderer fieldRenderer
	done     chan struct{}
}

var (
	runningStateDescr = map[bool]string{
		false: aurora.Colorize("paused", aurora.BlueFg).String(),
		true:  aurora.Colorize("running", aurora.CyanFg).String(),
	}
	finishedDescr = aurora.Colorize("finished", aurora.RedFg).String()
)

const (
	fieldView         = "field"
	leftColumnWidth   = 28
	minWindowHeight   = 20
	headerText        = "Cave! cellular generation playground"
	smallTerminalText = "Terminal height too small"
)

func NewConsoleUI(logger *log.Logger) *ConsoleUI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := ConsoleUI{
		logger:   logger,
		renderer: newColorRenderer(),
		done:     make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		t.logger.Fatal("terminal init failed", "err", err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{'q', "Q", "Quit", t.cmd(universe.CmdQuit), ""},
		{gocui.KeyCtrlC, "", "", t.cmd(universe.CmdQuit), ""},
		{'1', "1", "Paint", t.cmd(universe.CmdSelectPaint), ""},
		{'2', "2", "Life", t.cmd(universe.CmdSelectLife), ""},
		{'3', "3", "Drunk walk", t.cmd(universe.CmdSelectDrunkWalk), ""},
		{'r', "R", "Regen", t.cmd(universe.CmdRegen), ""},
		{'n', "N", "New seed", t.cmd(universe.CmdNewSeed), ""},
		{'s', "S", "Step", t.cmd(universe.CmdStep), ""},
		{'p', "P", "Run/Pause", t.cmd(universe.CmdToggleRun), ""},
		{'c', "C", "Clear", t.cmd(universe.CmdClear), ""},
		{gocui.KeySpace, "SPACE", "Toggle cell", t.cmd(universe.CmdToggleCell), ""},
		{gocui.KeyArrowUp, "ARROWS", "Pan", t.cmd(universe.CmdPanUp), ""},
		{gocui.KeyArrowDown, "", "", t.cmd(universe.CmdPanDown), ""},
		{gocui.KeyArrowLeft, "", "", t.cmd(universe.CmdPanLeft), ""},
		{gocui.KeyArrowRight, "", "", t.cmd(universe.CmdPanRight), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, fieldView},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			t.logger.Fatal("keybinding failed", "key", kb.key, "err", err)
		}
	}
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

//Start runs the terminal main loop until quit
//ticks are delivered through gocui's event queue, so the session is only touched by the main loop
func (t *ConsoleUI) Start() {
	go t.tickLoop(t.u.Options().Interval)
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		t.logger.Error("main loop failed", "err", err)
	}
	close(t.done)
	t.g.Close()
}

func (t *ConsoleUI) tickLoop(interval time.Duration) {
	if interval <= 0 {
		interval = universe.DefInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				t.u.Tick()
				return nil
			})
		}
	}
}

//Refresh redraws the panels, it is called from the main loop only
func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	v, e := t.g.View(fieldView)
	if e != nil {
		return
	}
	v.Clear()
	_, _ = fmt.Fprint(v, t.renderer.render(t.u.Snapshot()))
}

func (t *ConsoleUI) renderStatus() {
	v, e := t.g.View("status")
	if e != nil {
		return
	}
	s := t.u.Snapshot()
	mode := runningStateDescr[s.Running]
	if s.Finished {
		mode = finishedDescr
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Algorithm", "%v", s.Algorithm))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	_, _ = fmt.Fprintln(v, t.renderProp("Seed", "%v", s.Seed))
	_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("View", "%v", s.Origin))
	if s.Focus != nil {
		_, _ = fmt.Fprintln(v, t.renderProp("Agent", "%v", *s.Focus))
	} else if s.Algorithm == universe.AlgorithmPaint {
		_, _ = fmt.Fprintln(v, t.renderProp("Cursor", "%v", s.Cursor))
	}
}

func (t *ConsoleUI) renderConfiguration() {
	v, e := t.g.View("configuration")
	if e != nil {
		return
	}
	c := t.u.Options()
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
	_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
	_, _ = fmt.Fprintln(v, t.renderProp("Life engine", "%v", c.Engine))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight || maxX < leftColumnWidth+3 {
		if _, err := t.headerLayout(g, maxY, smallTerminalText); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView(fieldView)
		_ = g.DeleteView("help")
		return nil
	}
	if _, err := t.headerLayout(g, 3, headerText); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	v, err := g.SetView(fieldView, leftColumnWidth+1, 3, maxX-1, maxY-5)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Grid"
		v.Frame = true
	}
	//the field follows the terminal size on every frame
	t.u.Resize(v.Size())

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		_, _ = fmt.Fprintln(v, t.helpText())
	}

	t.Refresh()
	return nil
}

func (t *ConsoleUI) helpText() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	first := true
	for _, k := range t.k {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

//cmd adapts a session command to a key handler
func (t *ConsoleUI) cmd(c universe.Command) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		if !t.u.Handle(c) {
			return gocui.ErrQuit
		}
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	o := t.u.Snapshot().Origin
	t.u.ToggleCell(o.X+cx, o.Y+cy)
	return nil
}
