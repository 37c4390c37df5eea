package segment

import (
	"fmt"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// MainTokenPolicy says which constituent token becomes a word's main token.
type MainTokenPolicy int

const (
	MainTokenNone MainTokenPolicy = iota
	MainTokenFirst
	MainTokenSecond
)

// ActionKind selects what a matched rule does with the current token.
type ActionKind int

const (
	// CreateWord starts a new word from the current token, optionally
	// consuming the next token as well.
	CreateWord ActionKind = iota
	// MergeWithPrevious appends the current token to the last produced
	// word. Firing with no previous word is a fatal rule-table error.
	MergeWithPrevious
)

// Action is the effect half of a rule.
type Action struct {
	Kind ActionKind

	// CreateWord: consume the lookahead token, appending its surface text;
	// EatNextLemma additionally appends its lemma text.
	EatNext      bool
	EatNextLemma bool
	// Category assigned to the created word.
	Category domain.Category

	// MergeWithPrevious: append the current token's surface/lemma text to
	// the previous word.
	AttachSurface bool
	AttachLemma   bool
	// SetCategory, when non-empty, overrides the previous word's category.
	SetCategory domain.Category

	Main MainTokenPolicy
}

// Rule pairs a predicate set with an action. Current is mandatory; Next,
// Prev, and PrevWord are optional context constraints. A nil Next or Prev
// pattern is unconstrained; a non-nil pattern with no token at that
// position fails the rule.
type Rule struct {
	Name     string
	Current  TokenPattern
	Next     *TokenPattern
	Prev     *TokenPattern
	PrevWord CategoryPredicate
	Action   Action
}

// Compose scans tokens left to right, applying the first fully matching
// rule per token; tokens no rule matches become single-token words with
// their default category. The result covers every input token exactly
// once. Compose performs no I/O and fails only on a broken rule table.
func Compose(tokens []domain.Token, rules []Rule) ([]domain.Word, error) {
	words := make([]domain.Word, 0, len(tokens))
	var prevToken *domain.Token

	for i := 0; i < len(tokens); i++ {
		cur := tokens[i]
		var next *domain.Token
		if i+1 < len(tokens) {
			next = &tokens[i+1]
		}

		rule := matchRule(rules, cur, next, prevToken, words)
		if rule == nil {
			words = append(words, singleTokenWord(cur))
			prevToken = &tokens[i]
			continue
		}

		switch rule.Action.Kind {
		case CreateWord:
			w := domain.Word{
				SurfaceForm:    cur.Surface,
				SurfaceReading: cur.SurfaceReading,
				LemmaForm:      cur.LemmaForm,
				LemmaReading:   cur.LemmaReading,
				Category:       rule.Action.Category,
				Tokens:         []domain.Token{cur},
			}
			if rule.Action.Main == MainTokenFirst {
				main := cur
				w.Main = &main
			}
			if rule.Action.EatNext && next != nil {
				eaten := *next
				i++
				if rule.Action.Main == MainTokenSecond {
					main := eaten
					w.Main = &main
				}
				w.SurfaceForm += eaten.Surface
				w.SurfaceReading += eaten.SurfaceReading
				if rule.Action.EatNextLemma {
					w.LemmaForm += eaten.LemmaForm
					w.LemmaReading += eaten.LemmaReading
				}
				w.Tokens = append(w.Tokens, eaten)
				prevToken = &tokens[i]
			} else {
				prevToken = &tokens[i]
			}
			words = append(words, w)

		case MergeWithPrevious:
			if len(words) == 0 {
				return nil, fmt.Errorf("rule %q: %w", rule.Name, domain.ErrNoPreviousWord)
			}
			w := &words[len(words)-1]
			switch rule.Action.Main {
			case MainTokenFirst:
				// In a merge the first token belongs to the previous word.
				if w.Main == nil && len(w.Tokens) > 0 {
					main := w.Tokens[0]
					w.Main = &main
				}
			case MainTokenSecond:
				main := cur
				w.Main = &main
			}
			if rule.Action.AttachSurface {
				w.SurfaceForm += cur.Surface
				w.SurfaceReading += cur.SurfaceReading
			}
			if rule.Action.AttachLemma {
				w.LemmaForm += cur.LemmaForm
				w.LemmaReading += cur.LemmaReading
			}
			if rule.Action.SetCategory != "" {
				w.Category = rule.Action.SetCategory
			}
			w.Tokens = append(w.Tokens, cur)
			prevToken = &tokens[i]
		}
	}

	return words, nil
}

// ComposeDefault runs Compose with the default rule table.
func ComposeDefault(tokens []domain.Token) ([]domain.Word, error) {
	return Compose(tokens, DefaultRules())
}

func matchRule(rules []Rule, cur domain.Token, next, prevToken *domain.Token, words []domain.Word) *Rule {
	for r := range rules {
		rule := &rules[r]
		if !rule.Current.Matches(cur) {
			continue
		}
		if rule.Next != nil && (next == nil || !rule.Next.Matches(*next)) {
			continue
		}
		if rule.Prev != nil && (prevToken == nil || !rule.Prev.Matches(*prevToken)) {
			continue
		}
		if rule.PrevWord.constrained() {
			if len(words) == 0 || !rule.PrevWord.matches(words[len(words)-1].Category) {
				continue
			}
		}
		return rule
	}
	return nil
}

func singleTokenWord(tok domain.Token) domain.Word {
	reading := tok.SurfaceReading
	if reading == "" && tok.LemmaReading != "" {
		cat := domain.DefaultCategory(tok)
		reading = ReconstructReading(tok.Surface, tok.LemmaForm, tok.LemmaReading, cat == domain.Verb)
	}
	return domain.Word{
		SurfaceForm:    tok.Surface,
		SurfaceReading: reading,
		LemmaForm:      tok.LemmaForm,
		LemmaReading:   tok.LemmaReading,
		Category:       domain.DefaultCategory(tok),
		Tokens:         []domain.Token{tok},
	}
}
