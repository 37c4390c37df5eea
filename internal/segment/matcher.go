// Package segment composes raw morphological tokens into citable words by
// interpreting an ordered, declarative rule table. Rules are data; one
// generic evaluator walks the token stream, so adding a construction is a
// table edit, not new control flow.
package segment

import "github.com/heartmarshall/myjapanese-miner/internal/domain"

// TagPredicate constrains one tag slot of a token. The zero value matches
// anything. Constructed via AnyTag, NoneTag, or TagFunc.
type TagPredicate struct {
	anyOf  []domain.Tag
	noneOf []domain.Tag
	fn     func(domain.Tag) bool
}

// AnyTag matches when the slot equals one of the given tags.
func AnyTag(tags ...domain.Tag) TagPredicate { return TagPredicate{anyOf: tags} }

// NoneTag matches when the slot equals none of the given tags.
func NoneTag(tags ...domain.Tag) TagPredicate { return TagPredicate{noneOf: tags} }

// TagFunc matches when fn returns true for the slot's tag.
func TagFunc(fn func(domain.Tag) bool) TagPredicate { return TagPredicate{fn: fn} }

func (p TagPredicate) matches(tag domain.Tag) bool {
	if len(p.anyOf) > 0 {
		found := false
		for _, t := range p.anyOf {
			if t == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, t := range p.noneOf {
		if t == tag {
			return false
		}
	}
	if p.fn != nil && !p.fn(tag) {
		return false
	}
	return true
}

// TextPredicate constrains a token's surface text the same way.
type TextPredicate struct {
	anyOf  []string
	noneOf []string
}

// AnyText matches when the surface equals one of the given strings.
func AnyText(texts ...string) TextPredicate { return TextPredicate{anyOf: texts} }

// NoneText matches when the surface equals none of the given strings.
func NoneText(texts ...string) TextPredicate { return TextPredicate{noneOf: texts} }

func (p TextPredicate) matches(s string) bool {
	if len(p.anyOf) > 0 {
		found := false
		for _, t := range p.anyOf {
			if t == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, t := range p.noneOf {
		if t == s {
			return false
		}
	}
	return true
}

// TokenPattern is the predicate set applied to one token position. Unset
// fields are unconstrained.
type TokenPattern struct {
	POS1     TagPredicate
	POS2     TagPredicate
	POS3     TagPredicate
	POS4     TagPredicate
	ConjType TagPredicate
	ConjForm TagPredicate
	Surface  TextPredicate

	// Custom, when set, must also hold for the token.
	Custom func(domain.Token) bool
}

// Matches reports whether every constrained field holds for tok.
func (p TokenPattern) Matches(tok domain.Token) bool {
	return p.POS1.matches(tok.POS1) &&
		p.POS2.matches(tok.POS2) &&
		p.POS3.matches(tok.POS3) &&
		p.POS4.matches(tok.POS4) &&
		p.ConjType.matches(tok.ConjType) &&
		p.ConjForm.matches(tok.ConjForm) &&
		p.Surface.matches(tok.Surface) &&
		(p.Custom == nil || p.Custom(tok))
}

// CategoryPredicate constrains the previously produced word's category.
// The zero value is unconstrained; a constrained predicate fails when no
// previous word exists.
type CategoryPredicate struct {
	anyOf  []domain.Category
	noneOf []domain.Category
}

// AnyCategory matches when the previous word's category is one of cats.
func AnyCategory(cats ...domain.Category) CategoryPredicate {
	return CategoryPredicate{anyOf: cats}
}

// NoneCategory matches when the previous word's category is none of cats.
func NoneCategory(cats ...domain.Category) CategoryPredicate {
	return CategoryPredicate{noneOf: cats}
}

func (p CategoryPredicate) constrained() bool {
	return len(p.anyOf) > 0 || len(p.noneOf) > 0
}

func (p CategoryPredicate) matches(cat domain.Category) bool {
	if len(p.anyOf) > 0 {
		found := false
		for _, c := range p.anyOf {
			if c == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, c := range p.noneOf {
		if c == cat {
			return false
		}
	}
	return true
}
