package universe

//Command is one discrete user input forwarded by the shell
type Command int

const (
	CmdInvalid Command = iota
	CmdSelectPaint
	CmdSelectLife
	CmdSelectDrunkWalk
	CmdRegen
	CmdNewSeed
	CmdStep
	CmdToggleRun
	CmdClear
	CmdToggleCell
	CmdPanUp
	CmdPanDown
	CmdPanLeft
	CmdPanRight
	CmdQuit
)

var commandNames = map[Command]string{
	CmdInvalid:         "invalid",
	CmdSelectPaint:     "select paint",
	CmdSelectLife:      "select life",
	CmdSelectDrunkWalk: "select drunkwalk",
	CmdRegen:           "regen",
	CmdNewSeed:         "new seed",
	CmdStep:            "step",
	CmdToggleRun:       "toggle run",
	CmdClear:           "clear",
	CmdToggleCell:      "toggle cell",
	CmdPanUp:           "pan up",
	CmdPanDown:         "pan down",
	CmdPanLeft:         "pan left",
	CmdPanRight:        "pan right",
	CmdQuit:            "quit",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return commandNames[CmdInvalid]
}

var panDeltas = map[Command]Point{
	CmdPanUp:    {0, -1},
	CmdPanDown:  {0, 1},
	CmdPanLeft:  {-1, 0},
	CmdPanRight: {1, 0},
}
