package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/go-theft-auto/mui"
)

const maxEvents = 5000

var qualities = []string{"Low", "Medium", "High"}

// demo holds the state the demo windows edit. The engine keeps none of it.
type demo struct {
	log *slog.Logger

	name     string
	volume   float32
	speed    float32
	vsync    bool
	quality  int
	events   []string
	started  time.Time
	frameDur time.Duration
	last     time.Time
}

func newDemo(log *slog.Logger) *demo {
	now := time.Now()
	return &demo{
		log:     log,
		name:    "Tommy",
		volume:  0.5,
		speed:   1,
		vsync:   true,
		quality: 1,
		started: now,
		last:    now,
	}
}

func (d *demo) event(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.log.Debug("ui event", "event", msg)
	if len(d.events) >= maxEvents {
		d.events = d.events[1:]
	}
	d.events = append(d.events, fmt.Sprintf("%s  %s", time.Since(d.started).Truncate(time.Millisecond), msg))
}

// frame declares every demo window.
func (d *demo) frame(ctx *mui.Context) {
	now := time.Now()
	d.frameDur = now.Sub(d.last)
	d.last = now

	d.basicWindow(ctx)
	d.popupWindow(ctx)
	d.widgetsWindow(ctx)
	d.statsWindow(ctx)
}

func (d *demo) basicWindow(ctx *mui.Context) {
	if !ctx.BeginWindow("Basic Window", mui.NewRect(50, 50, 300, 200)) {
		return
	}
	defer ctx.EndWindow()

	ctx.LayoutRow([]float32{80, mui.Fill}, 0)
	ctx.Label("Label:")
	if ctx.Button("Click Me") {
		d.event("Button clicked!")
	}
}

func (d *demo) popupWindow(ctx *mui.Context) {
	if !ctx.BeginWindow("Popup Dialog", mui.NewRect(50, 270, 400, 300)) {
		return
	}
	defer ctx.EndWindow()

	ctx.LayoutRow([]float32{mui.Fill}, 0)
	ctx.Label("Click the button to open a popup:")
	if ctx.Button("Open Popup") {
		ctx.OpenPopup("My Popup")
		d.event("popup opened")
	}

	if ctx.BeginPopup("My Popup") {
		ctx.LayoutRow([]float32{mui.Fill}, 0)
		ctx.Label("This is a popup dialog!")
		if ctx.Button("Close") {
			ctx.ClosePopup("My Popup")
			d.event("popup closed")
		}
		ctx.EndPopup()
	}

	ctx.Text("Pressing anywhere outside the popup also closes it.")
}

func (d *demo) widgetsWindow(ctx *mui.Context) {
	if !ctx.BeginWindow("Widgets", mui.NewRect(380, 50, 360, 460)) {
		return
	}
	defer ctx.EndWindow()

	if ctx.Header("Settings", mui.DefaultOpen()) {
		ctx.LayoutRow([]float32{90, mui.Fill}, 0)

		ctx.Label("Name:")
		if res := ctx.Textbox("name", &d.name); res.Has(mui.ResultSubmit) {
			d.event("name set to %q", d.name)
		}

		ctx.Label("Volume:")
		if res := ctx.Slider("volume", &d.volume, 0, 1, mui.WithStep(0.05)); res.Has(mui.ResultChange) {
			d.log.Debug("volume changed", "value", d.volume)
		}

		ctx.Label("Speed:")
		ctx.Number("speed", &d.speed, 0.1, mui.WithFormat("%.1f"))

		ctx.LayoutRow([]float32{mui.Fill}, 0)
		if ctx.Checkbox("VSync", &d.vsync) {
			d.event("vsync %t", d.vsync)
		}
		if ctx.RadioGroup("Quality", &d.quality, qualities, mui.WithColumns(3)) {
			d.event("quality %s", qualities[d.quality])
		}
	}

	if ctx.Header("Tree") {
		if ctx.BeginTreeNode("Vehicles") {
			for i, name := range []string{"Banshee", "Infernus", "Cheetah"} {
				ctx.PushIDInt(i)
				if ctx.Button(name, mui.WithAlign(mui.AlignLeft)) {
					d.event("selected %s", name)
				}
				ctx.PopID()
			}
			ctx.EndTreeNode()
		}
		if ctx.BeginTreeNode("Weapons") {
			ctx.Label("None")
			ctx.EndTreeNode()
		}
	}

	ctx.LayoutRow([]float32{mui.Fill}, -1)
	if ctx.BeginPanel("events") {
		clip := ctx.BeginListClipper(len(d.events), ctx.TextHeight())
		for i := clip.StartIdx; i < clip.EndIdx; i++ {
			ctx.Label(d.events[i])
		}
		clip.End()
		ctx.EndPanel()
	}
}

func (d *demo) statsWindow(ctx *mui.Context) {
	if !ctx.BeginWindow("Stats", mui.NewRect(760, 50, 220, 170), mui.NoResize()) {
		return
	}
	defer ctx.EndWindow()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	ctx.LayoutRow([]float32{90, mui.Fill}, 0)
	row := func(k, v string) {
		ctx.Label(k)
		ctx.Label(v, mui.WithAlign(mui.AlignRight))
	}
	row("Frame", humanize.Comma(int64(ctx.Frame())))
	row("Frame time", d.frameDur.Truncate(10*time.Microsecond).String())
	row("Heap", humanize.Bytes(mem.HeapAlloc))
	row("Events", humanize.Comma(int64(len(d.events))))
	row("Commands", humanize.Comma(int64(ctx.CommandCount())))
	row("Uptime", humanize.RelTime(d.started, time.Now(), "", ""))
}
