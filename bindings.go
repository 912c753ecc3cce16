package memacs

// DefaultBindings maps an extended key to the name of the built-in command
// it invokes, generalizing bind.go's string-literal `bind <key> <command>`
// table (originally seeded from a defaultBindings script run once at
// startup) to a compiled Go map over this editor's own ExtKey/command-name
// space.
var DefaultBindings = map[ExtKey]string{
	namedExtKeys["left"]:     "backward-char",
	namedExtKeys["right"]:    "forward-char",
	namedExtKeys["up"]:       "previous-line",
	namedExtKeys["down"]:     "next-line",
	namedExtKeys["home"]:     "beginning-of-line",
	namedExtKeys["end"]:      "end-of-line",
	namedExtKeys["delete"]:   "delete-char",
	namedExtKeys["backspace"]: "backward-delete-char",
	ExtKey('a') | KeyCtrl:    "beginning-of-line",
	ExtKey('e') | KeyCtrl:    "end-of-line",
	ExtKey('k') | KeyCtrl:    "kill-region",
	ExtKey('y') | KeyCtrl:    "yank",
	ExtKey('g') | KeyCtrl:    "abort",
}

// Bindings is a per-editor key-to-command map, seeded from DefaultBindings
// but independently rebindable, satisfying the registry's requirement that
// rebinding the sole binding of a Permanent command fail (Bind makes the
// same check Registry.Unbind makes before a rebind replaces an entry).
type Bindings struct {
	table map[ExtKey]string
}

// NewBindings returns a Bindings seeded with a copy of DefaultBindings.
func NewBindings() *Bindings {
	b := &Bindings{table: make(map[ExtKey]string, len(DefaultBindings))}
	for k, v := range DefaultBindings {
		b.table[k] = v
	}
	return b
}

// Bind associates key with the named command/function, refusing to replace
// a Permanent entry's sole remaining binding. It keeps each entry's
// keyBindCount current: the previous target (if any) loses a reference, the
// new target gains one, the same ledger Alias/DeleteAlias maintain for
// alias references.
func (b *Bindings) Bind(r *Registry, key ExtKey, name string) error {
	if old, ok := b.table[key]; ok {
		if e := r.resolve(old); e != nil {
			if e.Attrs.has(AttrPermanent) && e.keyBindCount <= 1 {
				return NewOutcome(StatusFailure, "cannot rebind sole key bound to permanent command %q", old)
			}
			if e.keyBindCount > 0 {
				e.keyBindCount--
			}
		}
	}
	if e := r.resolve(name); e != nil {
		e.keyBindCount++
	}
	b.table[key] = name
	return nil
}

// Lookup returns the command/function name key is bound to, or "".
func (b *Bindings) Lookup(key ExtKey) string { return b.table[key] }

// Dispatch resolves key's binding and calls it through the registry with no
// arguments, the shape every key-bound command/function is invoked with.
func (ed *Editor) Dispatch(key ExtKey) (Value, error) {
	name := ed.keyBindings.Lookup(key)
	if name == "" {
		return Nil(), NewOutcome(StatusNotFound, "key %s is not bound", key)
	}
	if _, err := ed.Hooks.Invoke(ed, HookPreKey, IntValue(int64(key))); err != nil {
		return Nil(), err
	}
	v, err := ed.Registry.Call(ed, name, nil)
	if err != nil {
		return v, err
	}
	if _, herr := ed.Hooks.Invoke(ed, HookPostKey, IntValue(int64(key))); herr != nil {
		return v, herr
	}
	return v, nil
}
