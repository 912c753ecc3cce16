package memacs

import "sync"

// Editor is the single aggregate that owns every otherwise-global
// subsystem named in the data model: the buffer list, screen list, rings,
// hash table, hook slots, and global variable store, per the design note
// that a systems port should encapsulate these in one editor aggregate
// passed explicitly rather than relying on ambient globals. It carries a
// mutex, mu, modelled on prompt.go's Prompt.mu; no Editor method locks it.
type Editor struct {
	mu sync.Mutex

	Globals    map[string]Value
	Garbage    *garbageList
	evaluating bool

	Rings map[RingName]*Ring

	Buffers   []*Buffer
	CurBuffer *Buffer

	Screens      []*Screen
	curScreenIdx int

	Registry *Registry
	Hooks    *HookTable
	Macro    MacroRecorder
	Words    *wordChars

	ReturnMessage string
	MaxLoop       int
	AbortKey      ExtKey

	HardTabSize int
	SoftTabSize int
	WrapColumn  int

	Terminal Terminal
	Files    FileSystem

	keys        *keyReader
	keyBindings *Bindings
}

// Option configures a new Editor, generalizing options.go's functional
// options pattern from per-Prompt I/O/size knobs to the editor's process
// singletons.
type Option func(*Editor)

// WithScreenSize sets the initial screen's row/column count.
func WithScreenSize(rows, cols int) Option {
	return func(ed *Editor) {
		if len(ed.Screens) > 0 {
			ed.Screens[0].Rows, ed.Screens[0].Cols = rows, cols
		}
	}
}

// WithTerminal supplies the Terminal collaborator.
func WithTerminal(t Terminal) Option {
	return func(ed *Editor) { ed.Terminal = t }
}

// WithFileSystem supplies the FileSystem collaborator.
func WithFileSystem(fs FileSystem) Option {
	return func(ed *Editor) { ed.Files = fs }
}

// WithMaxLoop sets the loop-iteration guard used by `for`/`while`/`until`
// and unlimited macro playback.
func WithMaxLoop(n int) Option {
	return func(ed *Editor) { ed.MaxLoop = n }
}

// WithHardTabSize sets the screen's hard tab stop width.
func WithHardTabSize(n int) Option {
	return func(ed *Editor) { ed.HardTabSize = n }
}

// WithSoftTabSize sets the number of spaces a soft tab inserts.
func WithSoftTabSize(n int) Option {
	return func(ed *Editor) { ed.SoftTabSize = n }
}

// WithWrapColumn sets the default wrap column.
func WithWrapColumn(n int) Option {
	return func(ed *Editor) { ed.WrapColumn = n }
}

// WithKillRingSize sets the kill and delete rings' maximum size (0 =
// unbounded).
func WithKillRingSize(n int) Option {
	return func(ed *Editor) {
		ed.Rings[RingKill] = NewRing(RingKill, n)
		ed.Rings[RingDelete] = NewRing(RingDelete, n)
	}
}

// WithAbortKey overrides the default abort key (Ctrl-G).
func WithAbortKey(k ExtKey) Option {
	return func(ed *Editor) { ed.AbortKey = k }
}

// NewEditor creates an editor with one screen showing one empty buffer
// named "unnamed", applying opts in order.
func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		Globals: make(map[string]Value),
		Garbage: &garbageList{},
		Rings: map[RingName]*Ring{
			RingKill:    NewRing(RingKill, 0),
			RingDelete:  NewRing(RingDelete, 0),
			RingSearch:  NewRing(RingSearch, 30),
			RingReplace: NewRing(RingReplace, 30),
			RingMacro:   NewRing(RingMacro, 0),
		},
		Registry:    NewRegistry(),
		Hooks:       NewHookTable(),
		Words:       newWordChars(),
		MaxLoop:     2500,
		HardTabSize: 8,
		SoftTabSize: 8,
		AbortKey:    ExtKey('g') | KeyCtrl, // Ctrl-G
		Files:       NewOSFileSystem(),
		keyBindings: NewBindings(),
	}
	ed.evaluating = true
	RegisterBuiltins(ed.Registry)
	b := NewBuffer("unnamed")
	ed.Buffers = append(ed.Buffers, b)
	ed.CurBuffer = b
	s := NewScreen(1, b, 24, 80)
	ed.Screens = append(ed.Screens, s)

	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// CurScreen returns the editor's current screen.
func (ed *Editor) CurScreen() *Screen { return ed.Screens[ed.curScreenIdx] }

// CurWindow returns the current screen's current window.
func (ed *Editor) CurWindow() *Window { return ed.CurScreen().CurrentWindow() }

// BufferByName looks up a buffer by exact name.
func (ed *Editor) BufferByName(name string) *Buffer {
	for _, b := range ed.Buffers {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// CreateBuffer returns the named buffer, creating it (and firing the
// createBuf hook) if it does not already exist.
func (ed *Editor) CreateBuffer(name string) (*Buffer, error) {
	if b := ed.BufferByName(name); b != nil {
		return b, nil
	}
	b := NewBuffer(name)
	ed.Buffers = append(ed.Buffers, b)
	if _, err := ed.Hooks.Invoke(ed, HookCreateBuf, StringValue(name)); err != nil {
		return b, err
	}
	return b, nil
}

// DeleteBuffer removes b from the buffer list if Deletable.
func (ed *Editor) DeleteBuffer(b *Buffer) error {
	if !b.Deletable() {
		return NewOutcome(StatusFailure, "buffer %q is in use", b.Name)
	}
	for _, h := range allHooks {
		if e := ed.Registry.resolve(ed.Hooks.BoundTo(h)); e != nil && e.Buffer == b {
			return NewOutcome(StatusFailure, "buffer %q is bound to the %s hook", b.Name, h)
		}
	}
	b.clear()
	for i, x := range ed.Buffers {
		if x == b {
			ed.Buffers = append(ed.Buffers[:i], ed.Buffers[i+1:]...)
			break
		}
	}
	return nil
}

// Sweep runs the array garbage-list mark-and-sweep, called by the main
// loop between top-level commands (never mid-command), per the
// concurrency model's ordering guarantee.
func (ed *Editor) Sweep() { ed.Garbage.Sweep(ed.Globals) }
