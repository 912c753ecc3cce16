package memacs

// TokenKind classifies one lexical token of an expression/statement line.
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokInt
	TokString
	TokIdent
	TokGlobalVar // $name, $$name-style special variable
	TokKeyword
	TokOp
)

// StrPart is one piece of a double-quoted string's interpolated content:
// either literal text (Expr == "") or an embedded expression's source text
// to be parsed and evaluated in place, per the #{...} interpolation syntax.
type StrPart struct {
	Lit  string
	Expr string
}

// Token is one lexical unit produced by the lexer.
type Token struct {
	Kind  TokenKind
	Lit   string // operator/identifier/keyword text, or the string's plain value when no interpolation
	Int   int64
	Parts []StrPart // set for double-quoted strings with #{...} interpolation
	Pos   int       // byte offset in the source line, for error reporting

	// spaceBefore records whether whitespace preceded this token, used to
	// distinguish "f (x)" (call with separate argument) from "f(x)"
	// (call with parenthesized argument list).
	spaceBefore bool
}

var keywords = map[string]bool{
	"command": true, "function": true, "endroutine": true,
	"if": true, "elsif": true, "else": true, "endif": true,
	"loop": true, "for": true, "while": true, "until": true, "endloop": true,
	"break": true, "next": true, "return": true, "force": true,
	"and": true, "or": true, "not": true, "nil": true, "true": true, "false": true,
}
