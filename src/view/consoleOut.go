package view

import (
	"cavelife/src/universe"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

//ConsoleOut prints the session progress without a terminal UI
type ConsoleOut struct {
	u         universe.Universe
	w         io.Writer
	renderer  fieldRenderer
	startTime time.Time
	every     int
	lastIter  int
}

func NewConsoleOut(w io.Writer) *ConsoleOut {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleOut{w: w, renderer: newPlainRenderer(), every: 10}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if st.Finished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
			"Seed":           st.Seed,
		}
		_, _ = fmt.Fprintln(c.w, "\nFinished:")
		c.printHashData(resultData)
		_, _ = fmt.Fprintln(c.w, c.renderer.render(c.u.Snapshot()))
		return
	}
	if st.IterationNum != c.lastIter && st.IterationNum%c.every == 0 {
		_, _ = fmt.Fprintf(c.w, "  Iterations done: %v\n", st.IterationNum)
	}
	c.lastIter = st.IterationNum
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":   fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Algorithm":   o.Algorithm,
		"Life engine": o.Engine,
		"Seed":        o.Seed,
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
