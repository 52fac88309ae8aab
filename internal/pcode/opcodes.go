package pcode

// Opcode is one of the 44 Pcode VM instructions. The low 6 bits of an
// encoded opcode byte select one of these; the high 2 bits select the
// immediate width for opcodes that take an argument.
type Opcode uint8

const (
	OpNoop Opcode = iota
	OpHalt
	OpImm
	OpZero
	OpOne
	OpMinusOne
	OpStr
	OpFilm
	OpFont
	OpPal
	OpLoad
	OpGLoad
	OpStore
	OpGStore
	OpCall
	OpLibCall
	OpRet
	OpAlloc
	OpJump
	OpJmpFalse
	OpJmpTrue
	OpEqual
	OpLess
	OpLEqual
	OpNEqual
	OpGEqual
	OpGreat
	OpPlus
	OpMinus
	OpLOr
	OpMult
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpEor
	OpLAnd
	OpNot
	OpComp
	OpNeg
	OpDup
	OpEscOn
	OpEscOff
	OpCDFilm
)

var opcodeNames = [...]string{
	"OP_NOOP", "OP_HALT", "OP_IMM", "OP_ZERO", "OP_ONE", "OP_MINUSONE",
	"OP_STR", "OP_FILM", "OP_FONT", "OP_PAL", "OP_LOAD", "OP_GLOAD",
	"OP_STORE", "OP_GSTORE", "OP_CALL", "OP_LIBCALL", "OP_RET",
	"OP_ALLOC", "OP_JUMP", "OP_JMPFALSE", "OP_JMPTRUE", "OP_EQUAL",
	"OP_LESS", "OP_LEQUAL", "OP_NEQUAL", "OP_GEQUAL", "OP_GREAT",
	"OP_PLUS", "OP_MINUS", "OP_LOR", "OP_MULT", "OP_DIV", "OP_MOD",
	"OP_AND", "OP_OR", "OP_EOR", "OP_LAND", "OP_NOT", "OP_COMP",
	"OP_NEG", "OP_DUP", "OP_ESCON", "OP_ESCOFF", "OP_CDFILM",
}

// opcodeMask isolates the 6-bit opcode from the encoded instruction
// byte; the remaining 2 high bits encode the immediate width.
const opcodeMask = 0x3F

// noArgOpcodes take no immediate.
var noArgOpcodes = map[Opcode]bool{
	OpHalt: true, OpZero: true, OpOne: true, OpMinusOne: true,
	OpRet: true, OpEqual: true, OpLess: true, OpLEqual: true,
	OpNEqual: true, OpGEqual: true, OpGreat: true, OpLOr: true,
	OpLAnd: true, OpPlus: true, OpMinus: true, OpMult: true,
	OpDiv: true, OpMod: true, OpAnd: true, OpOr: true, OpEor: true,
	OpNot: true, OpComp: true, OpNeg: true, OpDup: true,
	OpEscOn: true, OpEscOff: true, OpNoop: true,
}

// argOpcodes take a single encoded-width immediate.
var argOpcodes = map[Opcode]bool{
	OpImm: true, OpStr: true, OpFilm: true, OpCDFilm: true,
	OpFont: true, OpPal: true, OpLoad: true, OpGLoad: true,
	OpStore: true, OpGStore: true, OpCall: true, OpLibCall: true,
	OpAlloc: true, OpJump: true, OpJmpFalse: true, OpJmpTrue: true,
}
