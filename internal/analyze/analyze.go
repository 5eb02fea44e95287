// Package analyze implements the tokeniser (C1): text in, a lazy sequence of
// index terms out. The pipeline — split, case-fold, drop stopwords, stem or
// lemmatise — is the same shape as the teacher's text analyzer; what changed
// is that every stage is now a configuration-driven option instead of a
// baked-in default, since the same tokeniser has to reproduce whatever
// settings an index was built with, not always "the standard" pipeline.
package analyze

import (
	"errors"
	"iter"
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// ErrConflictingReduction is the precondition failure when both Stemming and
// Lemmatization are requested: the two are mutually exclusive reduction
// strategies, never applied in combination.
var ErrConflictingReduction = errors.New("analyze: stemming and lemmatization are mutually exclusive")

// Config selects which stages of the pipeline run.
type Config struct {
	CaseFolding     bool
	StopWords       bool
	Stemming        bool
	Lemmatization   bool
	Lemmatize       func(string) string // required when Lemmatization is true
}

// Validate checks the mutual-exclusion precondition between Stemming and
// Lemmatization. Tokenize does not check it itself: with both flags set it
// stems and never lemmatises, and with Lemmatization set but no Lemmatize
// function it panics.
func (c Config) Validate() error {
	if c.Stemming && c.Lemmatization {
		return ErrConflictingReduction
	}
	if c.Lemmatization && c.Lemmatize == nil {
		return errors.New("analyze: lemmatization enabled but no Lemmatize function configured")
	}
	return nil
}

// Tokenize runs text through the pipeline and yields terms lazily, in order,
// one at a time. The text is split up front; the per-token stages run only
// as the consumer ranges over the sequence, and stop when it stops.
func Tokenize(text string, cfg Config) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, raw := range split(text) {
			token := raw
			if cfg.CaseFolding {
				token = strings.ToLower(token)
			}
			if cfg.StopWords && isStopword(token) {
				continue
			}
			switch {
			case cfg.Stemming:
				token = snowballeng.Stem(token, false)
			case cfg.Lemmatization:
				token = cfg.Lemmatize(token)
			}
			if token == "" {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// split breaks text on runs of characters that are neither letters nor
// digits, discarding the delimiters and any resulting empty tokens.
func split(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func isStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}
