package loop

import (
	"fmt"

	"github.com/tomz197/trajectory/internal/draw"
	"github.com/tomz197/trajectory/internal/sim"
)

const helpLine = "space launch  r reset  a/d angle  w/s speed  [ ] gravity  -/= zoom  arrows pan  mouse edit  q quit"

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// drawHUD draws the parameter and toggle overlay. Lines are placed one terminal
// row apart, so the logical row height depends on the current canvas scale.
func drawHUD(r draw.Renderer, canvas *draw.Canvas, st sim.Status) {
	rowHeight := canvas.LogicalHeight() / float64(max(canvas.TerminalHeight(), 1))

	r.DrawText(fmt.Sprintf("angle %5.1f°  speed %5.1f  gravity %5.2f  zoom %4.1f",
		st.Angle, st.Speed, st.Gravity, st.Zoom), 0, 0)
	r.DrawText(fmt.Sprintf("slow-mo %s  path %s  follow %s  blocks %s  |  %s  |  balls %d/%d  blocks %d",
		onOff(st.SlowMotion), onOff(st.ShowPath), onOff(st.Follow), onOff(st.Authoring),
		st.Mode, st.Active, st.Total, st.Blocks), 0, rowHeight)
	r.DrawText(helpLine, 0, canvas.LogicalHeight()-rowHeight)
}
