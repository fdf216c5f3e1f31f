package session

import "github.com/vovakirdan/kokaton/internal/core"

// autopilotLegs are the held actions of each leg, counter-clockwise from East.
var autopilotLegs = [8][]core.Action{
	{core.ActionRight},
	{core.ActionRight, core.ActionUp},
	{core.ActionUp},
	{core.ActionUp, core.ActionLeft},
	{core.ActionLeft},
	{core.ActionLeft, core.ActionDown},
	{core.ActionDown},
	{core.ActionDown, core.ActionRight},
}

// Autopilot is a scripted InputSource for unattended sessions.
// It flies the bird through the eight headings, LegTicks frames each, and
// fires every FireEvery frames.
type Autopilot struct {
	LegTicks  int
	FireEvery int
}

// Poll returns the scripted input for frame tick.
func (a Autopilot) Poll(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if a.LegTicks > 0 {
		for _, act := range autopilotLegs[(tick/a.LegTicks)%len(autopilotLegs)] {
			in.Set(act)
		}
	}
	if a.FireEvery > 0 && tick%a.FireEvery == 0 {
		in.Push(core.ActionFire)
	}
	return in
}
