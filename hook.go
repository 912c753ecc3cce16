package memacs

// HookName names one of the fixed hook slots.
type HookName string

const (
	HookCreateBuf HookName = "createBuf"
	HookEnterBuf  HookName = "enterBuf"
	HookExitBuf   HookName = "exitBuf"
	HookFilename  HookName = "filename"
	HookHelp      HookName = "help"
	HookWrap      HookName = "wrap"
	HookRead      HookName = "read"
	HookWrite     HookName = "write"
	HookMode      HookName = "mode"
	HookPreKey    HookName = "preKey"
	HookPostKey   HookName = "postKey"
	HookExit      HookName = "exit"
)

var allHooks = []HookName{
	HookCreateBuf, HookEnterBuf, HookExitBuf, HookFilename, HookHelp, HookWrap,
	HookRead, HookWrite, HookMode, HookPreKey, HookPostKey, HookExit,
}

// hookSlot holds one hook's bound target and its re-entry guard.
type hookSlot struct {
	target  string // registry entry name, empty when unbound
	running bool
}

// HookTable is the fixed-size hook dispatcher (component I): each slot
// holds an optional bound command/function name and a re-entry guard.
type HookTable struct {
	slots map[HookName]*hookSlot
}

// NewHookTable returns a table with every hook slot unbound.
func NewHookTable() *HookTable {
	t := &HookTable{slots: make(map[HookName]*hookSlot, len(allHooks))}
	for _, h := range allHooks {
		t.slots[h] = &hookSlot{}
	}
	return t
}

// Bind points hook to the registry entry named target. The registry is
// consulted by Invoke, not here, so Bind never fails on an unknown name;
// an unresolved target simply fails at invocation time.
func (t *HookTable) Bind(hook HookName, target string) {
	t.slots[hook].target = target
}

// Unbind clears hook's target.
func (t *HookTable) Unbind(hook HookName) {
	t.slots[hook].target = ""
}

// BoundTo reports hook's current target, or "" if unbound.
func (t *HookTable) BoundTo(hook HookName) string {
	return t.slots[hook].target
}

// Invoke runs hook with args if bound and not already running. An unbound
// or re-entrant hook is a silent no-op returning (Nil(), nil), per the
// dispatcher's contract. On failure the hook is disabled (erased) and the
// error message is annotated with the hook name so the failure is
// traceable to its source; the annotated error is then returned, so the
// failure propagates to the caller.
func (t *HookTable) Invoke(ed *Editor, hook HookName, args ...Value) (Value, error) {
	slot := t.slots[hook]
	if slot == nil || slot.target == "" || slot.running {
		return Nil(), nil
	}
	slot.running = true
	defer func() { slot.running = false }()

	v, err := ed.Registry.Call(ed, slot.target, args)
	if err != nil {
		name := slot.target
		slot.target = ""
		o := outcomeOf(err)
		if o.Message == "" {
			o.Message = "User function '" + name + "' failed"
		}
		o.Message += " (disabled '" + string(hook) + "' hook)"
		logf("hook %s: disabling %s: %s", hook, name, o.Message)
		return Nil(), o
	}
	return v, nil
}
