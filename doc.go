/*
Package mui is a small immediate-mode GUI engine that emits a flat list of
draw commands for the host to paint, built around a dedicated Context type.

# Overview

The UI is rebuilt every frame. There is no widget tree: a widget's identity
is a hash of its label and the enclosing ID scopes, and all state that must
survive between frames (window rectangles, scroll offsets, focus, text
cursors, tree expansion) is kept in tables keyed by that hash. Widget calls
return their result (clicked, changed, submitted) immediately.

Each frame produces a list of drawing commands (rectangles, text, icons and
clip changes) that the host hands to a renderer. The engine does no GPU work,
no font rasterization and no event polling of its own.

# Quick Start

	ctx := mui.NewContext()

	for running {
	    in := ctx.Input()
	    in.SetMousePos(x, y)
	    in.SetMouseButton(mui.MouseButtonLeft, down)

	    ctx.BeginFrame()
	    if ctx.BeginWindow("Basic Window", mui.NewRect(50, 50, 300, 200)) {
	        ctx.LayoutRow([]float32{80, mui.Fill}, 0)
	        ctx.Label("Label:")
	        if ctx.Button("Click Me") {
	            // Button was clicked
	        }
	        ctx.EndWindow()
	    }
	    ctx.EndFrame()

	    for cmd := range ctx.Commands() {
	        switch cmd.Kind {
	        case mui.CommandRect:
	        case mui.CommandText:
	        case mui.CommandIcon:
	        case mui.CommandClip:
	        }
	    }
	}

The GUI type bundles a Context with a Renderer; backend/opengl and
backend/ebiten provide renderers and input adapters.

# Frame Lifecycle

Input is buffered between frames. Pointer position overwrites, button and
key transitions, typed text and wheel movement accumulate. BeginFrame
freezes the buffer; EndFrame clears the accumulated events. Commands can be
iterated from EndFrame until the next BeginFrame.

# Layout

LayoutRow declares the column widths of a row: a positive value is a pixel
width, 0 the default item width, and Fill (any negative value) splits the
remaining width equally among the Fill columns. Cells are taken left to
right with LayoutNext; when the columns run out a new row with the same
widths begins.

# Z-Order and Hit Testing

Windows and popups are root containers. Every BeginWindow or BeginPopup
raises its root above the roots begun before it, so the last one begun in a
frame is on top; a popup begun inside its window sits above that window. At
BeginFrame the topmost root of the previous frame under the pointer becomes
the hover root; only widgets inside it can be hovered. Commands are
delivered root by root in ascending z order.

# Identity

Two widgets with the same label in the same scope share an ID and therefore
share state. Disambiguate with PushIDInt/PopID around loop bodies or with
the WithID option.

# Diagnostics

Misuse never panics. Stack overflows, unbalanced containers, layout calls
outside a container and command buffer overflow are logged through
log/slog and recorded in Diagnostics. SetVerbose(true) enables debug
logging.

# Textbox Keys

	Left / Right     Move by one grapheme cluster
	Home / End       Jump to start / end
	Shift+movement   Extend the selection
	Backspace / Del  Delete the selection or one grapheme cluster
	Enter            Submit and unfocus
	Escape           Unfocus

Shift-click a Slider or Number to type a value.
*/
package mui
