// Package tokenizer adapts the kagome morphological analyzer to the token
// shape the composer consumes.
package tokenizer

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// UniDic feature indices. The short UniDic layout is
// pos1..pos4, cType, cForm, lForm, lemma, orth, pron, orthBase, pronBase.
const (
	featConjType      = 4
	featConjForm      = 5
	featPronunciation = 9
	featOrthBase      = 10
	featPronBase      = 11
)

// Kagome wraps a kagome tokenizer loaded with the UniDic dictionary.
type Kagome struct {
	tok *tokenizer.Tokenizer
}

// New builds the tokenizer. The dictionary is compiled in, so this only
// fails on internal kagome errors.
func New() (*Kagome, error) {
	t, err := tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome: %w", err)
	}
	return &Kagome{tok: t}, nil
}

// Tokenize analyzes one sentence into domain tokens.
func (k *Kagome) Tokenize(text string) ([]domain.Token, error) {
	if text == "" {
		return nil, nil
	}

	raw := k.tok.Tokenize(text)
	tokens := make([]domain.Token, 0, len(raw))
	for _, kt := range raw {
		tokens = append(tokens, convert(kt))
	}
	return tokens, nil
}

// convert maps one kagome token. Unknown words carry a short feature list;
// every missing field falls back to the surface form so downstream code
// never sees empty lemmas.
func convert(kt tokenizer.Token) domain.Token {
	features := kt.Features()

	t := domain.Token{
		Surface:  kt.Surface,
		POS1:     domain.TagUnset,
		POS2:     domain.TagUnset,
		POS3:     domain.TagUnset,
		POS4:     domain.TagUnset,
		ConjType: domain.TagUnset,
		ConjForm: domain.TagUnset,
	}
	for i, pos := range [4]*domain.Tag{&t.POS1, &t.POS2, &t.POS3, &t.POS4} {
		if i < len(features) && features[i] != "" {
			*pos = domain.Tag(features[i])
		}
	}
	if len(features) > featConjType && features[featConjType] != "" {
		t.ConjType = domain.Tag(features[featConjType])
	}
	if len(features) > featConjForm && features[featConjForm] != "" {
		t.ConjForm = domain.Tag(features[featConjForm])
	}

	t.SurfaceReading = feature(features, featPronunciation)
	t.LemmaForm = feature(features, featOrthBase)
	t.LemmaReading = feature(features, featPronBase)

	if t.LemmaForm == "" || t.LemmaForm == "*" {
		t.LemmaForm = kt.Surface
	}
	if t.LemmaReading == "" || t.LemmaReading == "*" {
		t.LemmaReading = t.SurfaceReading
	}
	return t
}

func feature(features []string, i int) string {
	if i < len(features) && features[i] != "*" {
		return features[i]
	}
	return ""
}
