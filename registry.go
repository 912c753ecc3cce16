package memacs

import (
	"sort"
	"strings"
)

// EntryKind tags what a hash table entry dispatches to, generalizing
// bind.go's single map[command]commandFunc into the tagged union the data
// model calls for: built-in command, built-in function, alias, or a
// user-defined command/function stored as a hidden buffer.
type EntryKind int

const (
	EntryBuiltinCommand EntryKind = iota
	EntryBuiltinFunction
	EntryAlias
	EntryUserCommand
	EntryUserFunction
)

// Attr is the bitmask of flags a built-in entry can carry.
type Attr uint32

const (
	AttrEdit Attr = 1 << iota
	AttrNCountSkipZero
	AttrTerminalOnly
	AttrHidden
	AttrPrefixKey
	AttrBindOnce
	AttrHookEligible
	AttrPermanent
	AttrAddlArg
	AttrNoArgs
	AttrSpecArgs
	AttrMinLoad
	AttrShortLoad
	AttrNoLoad
	AttrHook
)

func (a Attr) has(f Attr) bool { return a&f != 0 }

// NativeFunc is a built-in command or function's implementation, analogous
// to bind.go's commandFunc but operating on the editor rather than a single
// line-editing state.
type NativeFunc func(ed *Editor, args []Value) (Value, error)

// Entry is one hash table slot.
type Entry struct {
	Name string
	Kind EntryKind

	Attrs   Attr
	ArgMin  int
	ArgMax  int // -1 means unbounded
	ArgType []Kind
	Help    string
	Native  NativeFunc

	// AliasTarget is the name the alias indirects to; keyBindCount is
	// bumped on the target entry when an alias is created and decremented
	// when deleted (the same ledger Bindings.Bind and Registry.Unbind
	// maintain for real key bindings).
	AliasTarget string

	// Buffer holds the user command/function's body for EntryUserCommand
	// and EntryUserFunction entries.
	Buffer *Buffer

	keyBindCount int // number of key bindings targeting this entry
}

// Registry is the name-to-entry hash table (component H), plus the sorted
// alias list the spec requires aliases be kept in.
type Registry struct {
	entries map[string]*Entry
	aliases []string // sorted alias names, kept current on insert/delete
}

// NewRegistry returns an empty registry with no built-ins registered;
// builtins.go populates it via RegisterNative.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Lookup returns the entry bound to name, or nil.
func (r *Registry) Lookup(name string) *Entry { return r.entries[name] }

// RegisterNative installs a built-in command or function.
func (r *Registry) RegisterNative(name string, kind EntryKind, attrs Attr, argMin, argMax int, argType []Kind, help string, fn NativeFunc) *Entry {
	e := &Entry{
		Name: name, Kind: kind, Attrs: attrs,
		ArgMin: argMin, ArgMax: argMax, ArgType: argType,
		Help: help, Native: fn,
	}
	r.entries[name] = e
	return e
}

// RegisterUser installs a user command/function whose body lives in buf.
func (r *Registry) RegisterUser(name string, kind EntryKind, buf *Buffer) *Entry {
	e := &Entry{Name: name, Kind: kind, Buffer: buf, ArgMax: -1}
	if buf != nil && buf.Call != nil {
		e.ArgMin, e.ArgMax = buf.Call.MinArgs, buf.Call.MaxArgs
	}
	r.entries[name] = e
	return e
}

// Alias creates an alias named name pointing at target, inserting it into
// the sorted alias list and bumping the target's alias counter. Fails if
// target does not exist or name is already bound.
func (r *Registry) Alias(name, target string) error {
	if _, exists := r.entries[name]; exists {
		return NewOutcome(StatusFailure, "name %q already in use", name)
	}
	tgt, ok := r.entries[target]
	if !ok {
		return NewOutcome(StatusFailure, "no such command or function %q", target)
	}
	r.entries[name] = &Entry{Name: name, Kind: EntryAlias, AliasTarget: target}
	tgt.keyBindCount++ // alias counts as a reference, same ledger as key bindings
	i := sort.SearchStrings(r.aliases, name)
	r.aliases = append(r.aliases, "")
	copy(r.aliases[i+1:], r.aliases[i:])
	r.aliases[i] = name
	return nil
}

// DeleteAlias removes an alias and decrements its target's reference count.
func (r *Registry) DeleteAlias(name string) error {
	e, ok := r.entries[name]
	if !ok || e.Kind != EntryAlias {
		return NewOutcome(StatusFailure, "no such alias %q", name)
	}
	if tgt, ok := r.entries[e.AliasTarget]; ok {
		tgt.keyBindCount--
	}
	delete(r.entries, name)
	i := sort.SearchStrings(r.aliases, name)
	if i < len(r.aliases) && r.aliases[i] == name {
		r.aliases = append(r.aliases[:i], r.aliases[i+1:]...)
	}
	return nil
}

// Aliases returns the alias names in sorted order.
func (r *Registry) Aliases() []string { return append([]string(nil), r.aliases...) }

// resolve follows alias indirection to the terminal entry, or nil if name
// is unbound or the alias chain is broken.
func (r *Registry) resolve(name string) *Entry {
	e, ok := r.entries[name]
	if !ok {
		return nil
	}
	seen := map[string]bool{}
	for e.Kind == EntryAlias {
		if seen[e.Name] {
			return nil
		}
		seen[e.Name] = true
		next, ok := r.entries[e.AliasTarget]
		if !ok {
			return nil
		}
		e = next
	}
	return e
}

// Unbind removes a binding, rejecting an attempt to strip the last
// reference from a Permanent entry, per the spec's protection rule.
func (r *Registry) Unbind(name string) error {
	e := r.resolve(name)
	if e == nil {
		return NewOutcome(StatusFailure, "no such command or function %q", name)
	}
	if e.Attrs.has(AttrPermanent) && e.keyBindCount <= 1 {
		return NewOutcome(StatusFailure, "cannot unbind sole binding of permanent command %q", e.Name)
	}
	if e.keyBindCount > 0 {
		e.keyBindCount--
	}
	return nil
}

// Call resolves name (through alias indirection) and invokes it: a native
// function directly, or a user command/function body through the statement
// executor. checkArgs enforces the entry's declared min/max argument count
// before dispatch.
func (r *Registry) Call(ed *Editor, name string, args []Value) (Value, error) {
	e := r.resolve(name)
	if e == nil {
		return Nil(), NewOutcome(StatusNotFound, "no such command or function %q", name)
	}
	if err := checkArgs(e, args); err != nil {
		return Nil(), err
	}
	switch e.Kind {
	case EntryBuiltinCommand, EntryBuiltinFunction:
		if e.Native == nil {
			return Nil(), NewOutcome(StatusFailure, "%q has no implementation", name)
		}
		return e.Native(ed, args)
	case EntryUserCommand, EntryUserFunction:
		return ed.callUserRoutine(e, args)
	default:
		return Nil(), NewOutcome(StatusFailure, "%q is not callable", name)
	}
}

func checkArgs(e *Entry, args []Value) error {
	if e.Attrs.has(AttrNoArgs) && len(args) > 0 {
		return NewOutcome(StatusScriptError, "%q takes no arguments", e.Name)
	}
	if e.ArgMin > 0 && len(args) < e.ArgMin {
		return NewOutcome(StatusScriptError, "%q requires at least %d argument(s)", e.Name, e.ArgMin)
	}
	if e.ArgMax >= 0 && len(args) > e.ArgMax {
		return NewOutcome(StatusScriptError, "%q takes at most %d argument(s)", e.Name, e.ArgMax)
	}
	for i, v := range args {
		if i >= len(e.ArgType) {
			break
		}
		want := e.ArgType[i]
		if want != 0 && v.Kind() != want {
			return NewOutcome(StatusScriptError, "%q argument %d: expected %s, got %s", e.Name, i+1, want, v.Kind())
		}
	}
	return nil
}

// HelpText renders a one-line synopsis for name: the resolved entry's name,
// followed by " - " and its help string when it has one.
func (r *Registry) HelpText(name string) string {
	e := r.resolve(name)
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Name)
	if e.Help != "" {
		b.WriteString(" - ")
		b.WriteString(e.Help)
	}
	return b.String()
}
