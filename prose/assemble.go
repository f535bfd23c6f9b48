package prose

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/weftlang/weft/token"
)

// state is the pending separator between the previous word and the next.
type state int

const (
	// beginning: nothing emitted yet; the next word starts the output.
	beginning state = iota
	// newSentence: a period is pending; the next word opens a sentence.
	newSentence
	// interword: a plain space is pending.
	interword
	// comma: ", " is pending.
	comma
	// semicolon: "; " is pending.
	semicolon
	// dash: " -- " is pending.
	dash
	// article: an "a" was just emitted; the next word decides the "n".
	article
	// glue: no separator before the next token.
	glue
)

// upperFirst capitalizes a single leading letter, language-aware.
var upperFirst = cases.Upper(language.English)

// Assemble converts tokens into finished text. See the package
// documentation for the full rule set.
func Assemble(tokens []token.Token) string {
	var b strings.Builder
	st := beginning

	for _, tk := range tokens {
		switch tk.Kind {
		case token.Period:
			st = newSentence
		case token.Comma:
			if st == interword {
				st = comma
			}
		case token.Dash:
			if st == interword || st == comma {
				st = dash
			}
		case token.Semicolon:
			if st == interword || st == comma || st == dash {
				st = semicolon
			}
		case token.Glue:
			st = glue
		case token.Article:
			st = write(&b, st, "a", article)
		case token.Word:
			st = write(&b, st, tk.Text, interword)
		}
	}

	if st != beginning && st != newSentence {
		b.WriteByte('.')
	}
	return b.String()
}

// write flushes the pending separator, emits word (capitalized at a
// sentence start), and returns the state the word leaves behind.
func write(b *strings.Builder, st state, word string, next state) state {
	if word == "" {
		return st
	}
	if st == beginning || st == newSentence {
		word = capitalize(word)
	}

	switch st {
	case newSentence:
		b.WriteString(". ")
	case interword:
		b.WriteByte(' ')
	case comma:
		b.WriteString(", ")
	case semicolon:
		b.WriteString("; ")
	case dash:
		b.WriteString(" -- ")
	case article:
		if leadingVowel(word) {
			b.WriteByte('n')
		}
		b.WriteByte(' ')
	}
	// beginning and glue emit no separator.

	b.WriteString(word)
	return next
}

// capitalize uppercases the first letter of word, leaving the rest alone.
func capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return upperFirst.String(word[:size]) + word[size:]
}

// leadingVowel reports whether word starts with a vowel, case-insensitive.
func leadingVowel(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return strings.ContainsRune("aeiouAEIOU", r)
}
