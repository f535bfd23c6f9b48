// Package token defines the output vocabulary shared by grammar, compiler
// and prose: plain words plus the control marks the assembler consumes.
//
// A Token is either a Word carrying text, or one of the control marks:
//
//   - Period / Comma / Semicolon / Dash — pending punctuation, merged by the
//     assembler under its precedence rules rather than emitted verbatim.
//   - Article — resolves to "a" or "an" depending on the word that follows.
//   - Glue — suppresses the separator before the next token.
//
// Marks are ordinary enum values compared structurally, never by identity.
package token

// Kind discriminates token variants.
type Kind int

const (
	// Word is literal text, emitted (possibly capitalized) by the assembler.
	Word Kind = iota
	// Period terminates the current sentence.
	Period
	// Comma requests a ", " separator before the next word.
	Comma
	// Semicolon requests a "; " separator before the next word.
	Semicolon
	// Dash requests a " -- " separator before the next word.
	Dash
	// Article resolves to "a" or "an" against the following word.
	Article
	// Glue suppresses the separator before the next token.
	Glue
)

// String returns a short human-readable tag for k.
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Period:
		return "period"
	case Comma:
		return "comma"
	case Semicolon:
		return "semicolon"
	case Dash:
		return "dash"
	case Article:
		return "article"
	case Glue:
		return "glue"
	default:
		return "unknown"
	}
}

// Token is one element of an evaluator's output stream.
// Text is meaningful only when Kind == Word.
type Token struct {
	Kind Kind
	Text string
}

// Of returns a Word token carrying text.
func Of(text string) Token { return Token{Kind: Word, Text: text} }

// Mark returns a control token of the given kind.
func Mark(k Kind) Token { return Token{Kind: k} }
