// Package normalize turns raw content text into a canonical comparable
// form: lowercased, stripped of noise characters, tokenized and stemmed.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/dutch"
	"github.com/blevesearch/snowballstem/english"
)

// maxStemPasses bounds the fixed-point stemming loop. Snowball output
// almost always stabilizes after one extra pass.
const maxStemPasses = 4

// stemFunc is the signature shared by the generated snowball stemmers.
type stemFunc func(env *snowballstem.Env) bool

// Normalizer produces canonical text for indicator matching.
// Safe for concurrent use.
type Normalizer struct {
	language string
	stem     stemFunc
}

// New creates a Normalizer for the given language.
// Supported languages: "dutch" (alias "nl"), "english" (alias "en").
func New(language string) (*Normalizer, error) {
	switch strings.ToLower(language) {
	case "dutch", "nl":
		return &Normalizer{language: "dutch", stem: dutch.Stem}, nil
	case "english", "en":
		return &Normalizer{language: "english", stem: english.Stem}, nil
	default:
		return nil, fmt.Errorf("unsupported normalizer language: %q", language)
	}
}

// NewDefault returns the Dutch normalizer, the canonical default
// indicator language.
func NewDefault() *Normalizer {
	return &Normalizer{language: "dutch", stem: dutch.Stem}
}

// Language returns the configured stemmer language.
func (n *Normalizer) Language() string {
	return n.language
}

// Normalize lowercases the text, strips every character except word
// characters, whitespace, periods and question marks, tokenizes, stems
// each token and rejoins with single spaces. Periods and question marks
// act as token separators and do not survive into the output, so
// Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '.' || r == '?':
			b.WriteByte(' ')
		}
		// everything else is dropped
	}

	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return ""
	}

	for i, tok := range tokens {
		tokens[i] = n.stemToken(tok)
	}

	return strings.Join(tokens, " ")
}

// stemToken stems a single token to a fixed point. Snowball stemmers
// are not idempotent on their own: a stemmed token can expose another
// removable suffix, and idempotent normalization is part of the
// contract.
func (n *Normalizer) stemToken(token string) string {
	for pass := 0; pass < maxStemPasses; pass++ {
		env := snowballstem.NewEnv(token)
		n.stem(env)
		out := env.Current()
		if out == token {
			return out
		}
		token = out
	}
	return token
}
