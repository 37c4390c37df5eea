package segment

import "github.com/heartmarshall/myjapanese-miner/internal/domain"

// DefaultRules is the standard composition table. Order is load-bearing:
// the first fully matching rule wins, so specific constructions must come
// before the general catch-alls. The table favors minable terms over
// textbook segmentation: conjugation chains collapse into the word a
// learner would look up.
func DefaultRules() []Rule {
	return []Rule{
		// ～まし+た, ～な+かった: auxiliary chains onto a previous auxiliary.
		{
			Name: "auxiliary onto auxiliary",
			Current: TokenPattern{
				POS1: AnyTag(domain.Jodoushi),
				ConjType: AnyTag(
					domain.JodoushiTa,
					domain.JodoushiNai,
					domain.JodoushiTai,
					domain.JodoushiMasu,
					domain.JodoushiNu,
				),
			},
			Prev: &TokenPattern{POS1: AnyTag(domain.Jodoushi)},
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 食べ+たい reads as an adjective downstream.
		{
			Name: "tai onto verb",
			Current: TokenPattern{
				POS1:     AnyTag(domain.Jodoushi),
				ConjType: AnyTag(domain.JodoushiTai),
			},
			Prev: &TokenPattern{POS1: AnyTag(domain.Doushi)},
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
				SetCategory:   domain.Adjective,
			},
		},

		// General auxiliary onto a verb word. な is excluded: adnominal な
		// after a verb starts its own clause.
		{
			Name: "auxiliary onto verb",
			Current: TokenPattern{
				POS1:     AnyTag(domain.Jodoushi),
				ConjType: NoneTag(domain.JodoushiTai),
				Surface:  NoneText("な"),
			},
			PrevWord: AnyCategory(domain.Verb, domain.SuruVerb),
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 高+かった, 美味しく+ない.
		{
			Name: "auxiliary onto adjective",
			Current: TokenPattern{
				POS1: AnyTag(domain.Jodoushi),
				ConjType: AnyTag(
					domain.JodoushiTa,
					domain.JodoushiNai,
					domain.JodoushiTai,
				),
			},
			Prev: &TokenPattern{POS1: AnyTag(domain.Keiyoushi)},
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 読み+やすい and friends: bound adjective onto an adjective stem.
		{
			Name: "bound adjective onto adjective",
			Current: TokenPattern{
				POS1: AnyTag(domain.Keiyoushi),
				POS2: AnyTag(domain.Hijiritsukanou),
			},
			Prev: &TokenPattern{POS1: AnyTag(domain.Keiyoushi)},
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 東京+都: common noun glued onto a proper noun.
		{
			Name: "compound noun",
			Current: TokenPattern{
				POS1: AnyTag(domain.Meishi),
				POS2: AnyTag(domain.Futsuumeishi),
			},
			Prev:     &TokenPattern{POS1: AnyTag(domain.Meishi), POS2: AnyTag(domain.Koyuumeishi)},
			PrevWord: NoneCategory(domain.CompoundNoun),
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
				SetCategory:   domain.CompoundNoun,
			},
		},

		// お+手紙, 不+可能.
		{
			Name:    "prefixed noun",
			Current: TokenPattern{POS1: AnyTag(domain.Settouji)},
			Next:    &TokenPattern{POS1: AnyTag(domain.Meishi)},
			Action: Action{
				Kind:         CreateWord,
				EatNext:      true,
				EatNextLemma: true,
				Category:     domain.Noun,
				Main:         MainTokenSecond,
			},
		},

		// 食べ+て, 飲ん+で.
		{
			Name: "te-form onto verb",
			Current: TokenPattern{
				POS1:    AnyTag(domain.Joshi),
				POS2:    AnyTag(domain.Setsuzokujoshi),
				Surface: AnyText("て", "で"),
			},
			Prev: &TokenPattern{POS1: AnyTag(domain.Doushi)},
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 子供+たち, 三+回.
		{
			Name:    "suffix onto noun",
			Current: TokenPattern{POS1: AnyTag(domain.Setsubiji)},
			Prev:    &TokenPattern{POS1: AnyTag(domain.Meishi)},
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 一+万+二+千: numerals run together into one number word.
		{
			Name: "join numbers",
			Current: TokenPattern{
				POS1: AnyTag(domain.Meishi),
				POS2: AnyTag(domain.Suushi),
			},
			PrevWord: AnyCategory(domain.Number),
			Action: Action{
				Kind:          MergeWithPrevious,
				AttachSurface: true,
				AttachLemma:   true,
			},
		},

		// 勉強+する fuses into a suru-verb; the noun stays the main token.
		{
			Name: "suru-verb fusion",
			Current: TokenPattern{
				POS1: AnyTag(domain.Meishi),
				POS3: AnyTag(domain.Sahenkanou),
			},
			Next: &TokenPattern{ConjType: AnyTag(domain.Sagyouhenkaku)},
			Action: Action{
				Kind:         CreateWord,
				EatNext:      true,
				EatNextLemma: true,
				Category:     domain.SuruVerb,
				Main:         MainTokenFirst,
			},
		},

		// UniDic tags na-adjectives two ways, so two fusion rules.
		{
			Name:    "na-adjective plus na",
			Current: TokenPattern{POS1: AnyTag(domain.Keijoushi)},
			Next: &TokenPattern{
				POS1:    AnyTag(domain.Jodoushi),
				Surface: AnyText("な"),
			},
			Action: Action{
				Kind:         CreateWord,
				EatNext:      true,
				EatNextLemma: true,
				Category:     domain.AdjectivalNoun,
				Main:         MainTokenFirst,
			},
		},
		{
			Name: "na-capable noun plus na",
			Current: TokenPattern{
				POS1: AnyTag(domain.Meishi),
				POS3: AnyTag(domain.Keijoushikanou),
			},
			Next: &TokenPattern{
				POS1:    AnyTag(domain.Jodoushi),
				Surface: AnyText("な"),
			},
			Action: Action{
				Kind:         CreateWord,
				EatNext:      true,
				EatNextLemma: true,
				Category:     domain.AdjectivalNoun,
				Main:         MainTokenFirst,
			},
		},
	}
}
