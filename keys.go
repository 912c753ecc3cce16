package memacs

import "fmt"

// ExtKey is a 16-bit composite of an 8-bit code point and the modifier/kind
// flag bits above it, generalizing bind.go/input.go's rune-and-high-bit key
// encoding to the fixed flag set named in the data model.
type ExtKey uint16

const (
	KeyCodeMask ExtKey = 0x00ff

	KeyCtrl ExtKey = 1 << (8 + iota)
	KeyMeta
	KeyShift
	KeyFKey
	KeyPrefix1
	KeyPrefix2
	KeyPrefix3
)

// Code returns the 8-bit code point carried by k.
func (k ExtKey) Code() byte { return byte(k & KeyCodeMask) }

// IsPrefix reports whether k carries any of the three prefix flags, meaning
// the key sequence continues with another key whose flags get OR'd in.
func (k ExtKey) IsPrefix() bool { return k&(KeyPrefix1|KeyPrefix2|KeyPrefix3) != 0 }

func (k ExtKey) String() string {
	s := ""
	if k&KeyCtrl != 0 {
		s += "C-"
	}
	if k&KeyMeta != 0 {
		s += "M-"
	}
	if k&KeyShift != 0 {
		s += "S-"
	}
	c := k.Code()
	if k&KeyFKey != 0 {
		return fmt.Sprintf("%sF%d", s, c)
	}
	if c < 0x20 || c == 0x7f {
		return fmt.Sprintf("%s^%c", s, c^0x40)
	}
	return fmt.Sprintf("%s%c", s, c)
}

// namedExtKeys maps the escape-sequence names the terminal driver is
// expected to decode into ExtKey values with KeyFKey set, generalizing
// bind.go's namedKeys table of terminal function-key names.
var namedExtKeys = map[string]ExtKey{
	"up":        ExtKey(1) | KeyFKey,
	"down":      ExtKey(2) | KeyFKey,
	"left":      ExtKey(3) | KeyFKey,
	"right":     ExtKey(4) | KeyFKey,
	"home":      ExtKey(5) | KeyFKey,
	"end":       ExtKey(6) | KeyFKey,
	"pageup":    ExtKey(7) | KeyFKey,
	"pagedown":  ExtKey(8) | KeyFKey,
	"delete":    ExtKey(9) | KeyFKey,
	"backspace": ExtKey(127),
	"enter":     ExtKey('\r'),
	"tab":       ExtKey('\t'),
}

// keyReader decodes a stream of input bytes into ExtKey values and supports
// pushing one key back, generalizing input.go's parseKey/seqTrie decoder to
// the editor's ExtKey encoding rather than a rune-plus-high-bit encoding.
type keyReader struct {
	read    func() (byte, error)
	pending []ExtKey
}

func newKeyReader(read func() (byte, error)) *keyReader {
	return &keyReader{read: read}
}

// NewKeyDecoder adapts a raw byte source into an ExtKey decoder function,
// the shape cmd/memacs's input loop reads from.
func NewKeyDecoder(read func() (byte, error)) func() (ExtKey, error) {
	kr := newKeyReader(read)
	return kr.GetKey
}

// PushBack returns k to the front of the pending queue, so the next GetKey
// call returns it again.
func (kr *keyReader) PushBack(k ExtKey) {
	kr.pending = append([]ExtKey{k}, kr.pending...)
}

// GetKey reads one raw key: a bare byte becomes an ExtKey with Ctrl set for
// C0 control bytes below 0x20 (except \r, \n, \t) and no flags otherwise. A
// leading ESC (0x1b) sets Meta on the following key. This intentionally
// does not attempt the full terminal escape-sequence decode bind.go/input.go
// perform for arrow/function keys; a Terminal implementation that knows its
// own escape sequences is expected to call PushBack with a pre-decoded
// named key (see namedExtKeys) instead of raw escape bytes.
func (kr *keyReader) GetKey() (ExtKey, error) {
	if len(kr.pending) > 0 {
		k := kr.pending[0]
		kr.pending = kr.pending[1:]
		return k, nil
	}
	b, err := kr.read()
	if err != nil {
		return 0, err
	}
	meta := ExtKey(0)
	if b == 0x1b {
		nb, err := kr.read()
		if err != nil {
			return ExtKey(b), nil
		}
		meta = KeyMeta
		b = nb
	}
	k := ExtKey(b) | meta
	if b < 0x20 && b != '\r' && b != '\n' && b != '\t' {
		c := b | 0x40
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A' // Ctrl-letter keys carry the lowercase letter, as in DefaultBindings
		}
		k = ExtKey(c) | KeyCtrl | meta
	}
	return k, nil
}

// ReadSequence reads one key, and if it binds to a prefix pseudo-command in
// reg, reads another key and OR's the prefix flag in, per the key-sequence
// composition rule ("read one key, then if it binds to a prefix, read
// another and OR in the prefix bits").
func (kr *keyReader) ReadSequence(isPrefix func(ExtKey) (ExtKey, bool)) (ExtKey, error) {
	k, err := kr.GetKey()
	if err != nil {
		return 0, err
	}
	if flag, ok := isPrefix(k); ok {
		k2, err := kr.GetKey()
		if err != nil {
			return 0, err
		}
		return k2 | flag, nil
	}
	return k, nil
}
