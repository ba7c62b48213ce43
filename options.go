package mui

// Option configures a widget or container.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = mui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.Button("Go", mui.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := mui.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// TextAlign positions a label inside its cell.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// --- Core Options ---
var (
	OptID         = NewOptKey("id", "")
	OptAlign      = NewOptKey("align", AlignLeft)
	OptNoFrame    = NewOptKey("noFrame", false)
	OptNoInteract = NewOptKey("noInteract", false)
	OptTruncate   = NewOptKey("truncate", false)
)

// --- Container Options ---
var (
	OptNoTitle  = NewOptKey("noTitle", false)
	OptNoClose  = NewOptKey("noClose", false)
	OptNoResize = NewOptKey("noResize", false)
	OptNoScroll = NewOptKey("noScroll", false)
	OptAutoSize = NewOptKey("autoSize", false)
	OptClosed   = NewOptKey("closed", false) // Start closed; never created implicitly
	OptPopup    = NewOptKey("popup", false)
)

// --- Slider/Number Options ---
var (
	OptFormat = NewOptKey("format", "%.2f")
	OptStep   = NewOptKey[float32]("step", 0)
)

// --- Tree Options ---
var (
	OptExpanded = NewOptKey("expanded", false)
)

// WithID sets an explicit ID label for the widget, used instead of its
// display label when hashing.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithAlign sets the text alignment within the widget.
func WithAlign(a TextAlign) Option { return WithOpt(OptAlign, a) }

// NoFrame skips the widget or container background.
func NoFrame() Option { return WithOpt(OptNoFrame, true) }

// NoInteract draws the widget without reacting to input.
func NoInteract() Option { return WithOpt(OptNoInteract, true) }

// Truncate shortens text that overflows its cell and ends it with "..".
func Truncate() Option { return WithOpt(OptTruncate, true) }

// NoTitle hides the window title bar.
func NoTitle() Option { return WithOpt(OptNoTitle, true) }

// NoClose hides the window close button.
func NoClose() Option { return WithOpt(OptNoClose, true) }

// NoResize hides the window resize handle.
func NoResize() Option { return WithOpt(OptNoResize, true) }

// NoScroll disables scrollbars.
func NoScroll() Option { return WithOpt(OptNoScroll, true) }

// AutoSize sizes the container to its content.
func AutoSize() Option { return WithOpt(OptAutoSize, true) }

// StartClosed makes a window start closed until opened with OpenContainer.
func StartClosed() Option { return WithOpt(OptClosed, true) }

// WithFormat sets the display format for numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps values to multiples of step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// DefaultOpen makes headers and tree nodes start expanded.
func DefaultOpen() Option { return WithOpt(OptExpanded, true) }

// idLabel returns the label to hash for a widget.
func idLabel(o options, label string) string {
	if id := GetOpt(o, OptID); id != "" {
		return id
	}
	return label
}
