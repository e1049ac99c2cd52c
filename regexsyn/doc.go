// Package regexsyn implements the regex algebraic tree described by the
// engine's grammar: literal symbols and the two reserved leaves Lambda (^)
// and Null (~), combined with concatenation, union (+), and Kleene star (*).
//
// Parse builds a Tree from a regex string with standard precedence (star
// over concatenation over union) and implicit concatenation between adjacent
// operands, then reduces it with Simplify to the normal form the NFA builder
// and the GTG synthesizer both expect. String renders a Tree back to the
// grammar with minimal parenthesization.
package regexsyn
