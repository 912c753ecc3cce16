package memacs

// opClass names a family of binary operators that share a legality cell in
// the operand-kind coercion table. Keeping this as data (per the Design
// Notes' instruction to preserve the forceFit table as data, not control
// flow) lets tests drive the table directly instead of only exercising it
// through the parser.
type opClass int

const (
	opMath opClass = iota
	opShift
	opBitwise
	opFormat
	opSetIntersect // array '*'
	opSetExclude   // array '-'
	opSetUnion     // array '|'
	opConcat       // string/array '&'
	opRelational
	opREMatch
	opEquality
	opLogical
	opTernary
	opAssign
)

// coerceCell describes what the evaluator must do before applying an
// operator of a given class to a (left-kind, right-kind) pair: whether the
// combination is legal at all, and whether either side must be stringified
// first.
type coerceCell struct {
	legal            bool
	stringifyLeft    bool
	stringifyRight   bool
}

// coerceTable[class][left][right] mirrors the two-dimensional forceFit table
// from the original evaluator. Only cells that are legal for at least one
// class are populated explicitly; the zero value ({legal: false}) covers
// "wrong operand type" for every other combination.
var coerceTable = map[opClass]map[Kind]map[Kind]coerceCell{
	opMath: {
		KindInt: {KindInt: {legal: true}},
	},
	opShift: {
		KindInt: {KindInt: {legal: true}},
	},
	opBitwise: {
		KindInt: {KindInt: {legal: true}},
	},
	opFormat: {
		KindString: {
			KindInt:    {legal: true},
			KindString: {legal: true},
			KindBool:   {legal: true},
			KindArray:  {legal: true},
			KindNil:    {legal: true},
		},
	},
	opSetIntersect: {
		KindArray: {KindArray: {legal: true}},
	},
	opSetExclude: {
		KindArray: {KindArray: {legal: true}},
	},
	opSetUnion: {
		KindArray: {KindArray: {legal: true}},
	},
	opConcat: {
		KindString: {
			KindString: {legal: true},
			KindInt:    {legal: true, stringifyRight: true},
			KindBool:   {legal: true, stringifyRight: true},
			KindNil:    {legal: true, stringifyRight: true},
			KindArray:  {legal: true, stringifyRight: true},
		},
		KindArray: {KindArray: {legal: true}},
	},
	opRelational: {
		KindInt:    {KindInt: {legal: true}},
		KindString: {KindString: {legal: true}},
	},
	opREMatch: {
		KindString: {KindString: {legal: true}},
	},
	opEquality: {
		KindNil:    {KindNil: {legal: true}},
		KindBool:   {KindBool: {legal: true}},
		KindInt:    {KindInt: {legal: true}},
		KindString: {KindString: {legal: true}},
		KindArray:  {KindArray: {legal: true}},
	},
	opLogical: allKindsCell(),
	opTernary: allKindsCell(),
	opAssign:  allKindsCell(),
}

func allKindsCell() map[Kind]map[Kind]coerceCell {
	kinds := []Kind{KindNil, KindBool, KindInt, KindString, KindArray}
	m := make(map[Kind]map[Kind]coerceCell, len(kinds))
	for _, l := range kinds {
		row := make(map[Kind]coerceCell, len(kinds))
		for _, r := range kinds {
			row[r] = coerceCell{legal: true}
		}
		m[l] = row
	}
	return m
}

// lookupCoerce returns the cell governing class applied to (left, right),
// defaulting to the illegal zero value when no explicit cell is registered.
func lookupCoerce(class opClass, left, right Kind) coerceCell {
	if rows, ok := coerceTable[class]; ok {
		if row, ok := rows[left]; ok {
			if cell, ok := row[right]; ok {
				return cell
			}
		}
	}
	return coerceCell{}
}

// wrongOperandType builds the standard evaluator error for an illegal
// operator/operand-kind combination.
func wrongOperandType(op string, left, right Kind) error {
	return NewOutcome(StatusFailure, "wrong operand type for %s: %s, %s", op, left, right)
}
