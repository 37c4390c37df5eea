package segment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

func verbToken(surface, reading, lemma, lemmaReading string) domain.Token {
	return domain.Token{
		Surface: surface, SurfaceReading: reading,
		LemmaForm: lemma, LemmaReading: lemmaReading,
		POS1: domain.Doushi,
	}
}

func auxToken(surface, reading, lemma string, conjType domain.Tag) domain.Token {
	return domain.Token{
		Surface: surface, SurfaceReading: reading,
		LemmaForm: lemma, LemmaReading: reading,
		POS1: domain.Jodoushi, ConjType: conjType,
	}
}

func nounToken(surface, reading string) domain.Token {
	return domain.Token{
		Surface: surface, SurfaceReading: reading,
		LemmaForm: surface, LemmaReading: reading,
		POS1: domain.Meishi, POS2: domain.Futsuumeishi,
	}
}

func particleToken(surface string, pos2 domain.Tag) domain.Token {
	return domain.Token{
		Surface: surface, SurfaceReading: surface,
		LemmaForm: surface, LemmaReading: surface,
		POS1: domain.Joshi, POS2: pos2,
	}
}

func TestComposeAuxiliaryChain(t *testing.T) {
	t.Parallel()

	// 食べ まし た → one verb word 食べました.
	tokens := []domain.Token{
		verbToken("食べ", "タベ", "食べる", "タベル"),
		auxToken("まし", "マシ", "ます", domain.JodoushiMasu),
		auxToken("た", "タ", "た", domain.JodoushiTa),
	}

	words, err := ComposeDefault(tokens)
	require.NoError(t, err)
	require.Len(t, words, 1)

	w := words[0]
	assert.Equal(t, "食べました", w.SurfaceForm)
	assert.Equal(t, domain.Verb, w.Category)
	assert.Len(t, w.Tokens, 3)
}

func TestComposeTaiBecomesAdjective(t *testing.T) {
	t.Parallel()

	tokens := []domain.Token{
		verbToken("食べ", "タベ", "食べる", "タベル"),
		auxToken("たい", "タイ", "たい", domain.JodoushiTai),
	}

	words, err := ComposeDefault(tokens)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, domain.Adjective, words[0].Category)
	assert.Equal(t, "食べたい", words[0].SurfaceForm)
}

func TestComposeSuruVerbFusion(t *testing.T) {
	t.Parallel()

	noun := domain.Token{
		Surface: "勉強", SurfaceReading: "ベンキョウ",
		LemmaForm: "勉強", LemmaReading: "ベンキョウ",
		POS1: domain.Meishi, POS2: domain.Futsuumeishi, POS3: domain.Sahenkanou,
	}
	suru := domain.Token{
		Surface: "し", SurfaceReading: "シ",
		LemmaForm: "する", LemmaReading: "スル",
		POS1: domain.Doushi, ConjType: domain.Sagyouhenkaku,
	}

	words, err := ComposeDefault([]domain.Token{noun, suru})
	require.NoError(t, err)
	require.Len(t, words, 1)

	w := words[0]
	assert.Equal(t, domain.SuruVerb, w.Category)
	assert.Equal(t, "勉強し", w.SurfaceForm)
	assert.Equal(t, "勉強する", w.LemmaForm)
	require.NotNil(t, w.Main)
	assert.Equal(t, "勉強", w.Main.LemmaForm)
}

func TestComposePrefixedNounMainToken(t *testing.T) {
	t.Parallel()

	prefix := domain.Token{
		Surface: "お", SurfaceReading: "オ",
		LemmaForm: "御", LemmaReading: "オ",
		POS1: domain.Settouji,
	}
	tokens := []domain.Token{prefix, nounToken("手紙", "テガミ")}

	words, err := ComposeDefault(tokens)
	require.NoError(t, err)
	require.Len(t, words, 1)

	w := words[0]
	assert.Equal(t, domain.Noun, w.Category)
	assert.Equal(t, "お手紙", w.SurfaceForm)
	require.NotNil(t, w.Main)
	assert.Equal(t, "手紙", w.Main.LemmaForm)
}

func TestComposeNumberJoining(t *testing.T) {
	t.Parallel()

	num := func(s string) domain.Token {
		return domain.Token{
			Surface: s, SurfaceReading: s, LemmaForm: s, LemmaReading: s,
			POS1: domain.Meishi, POS2: domain.Suushi,
		}
	}
	words, err := ComposeDefault([]domain.Token{num("一"), num("万"), num("二"), num("千")})
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "一万二千", words[0].SurfaceForm)
	assert.Equal(t, domain.Number, words[0].Category)
}

func TestComposeTeFormBinding(t *testing.T) {
	t.Parallel()

	tokens := []domain.Token{
		verbToken("食べ", "タベ", "食べる", "タベル"),
		particleToken("て", domain.Setsuzokujoshi),
	}
	words, err := ComposeDefault(tokens)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "食べて", words[0].SurfaceForm)
	assert.Equal(t, domain.Verb, words[0].Category)
}

func TestComposeFallbackUsesDefaultCategory(t *testing.T) {
	t.Parallel()

	tokens := []domain.Token{
		nounToken("猫", "ネコ"),
		particleToken("が", domain.Kakujoshi),
	}
	words, err := ComposeDefault(tokens)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, domain.Noun, words[0].Category)
	assert.Equal(t, domain.Postposition, words[1].Category)
}

func TestComposeTotalCoverage(t *testing.T) {
	t.Parallel()

	// Every input token must land in exactly one output word.
	tokens := []domain.Token{
		nounToken("猫", "ネコ"),
		particleToken("が", domain.Kakujoshi),
		verbToken("食べ", "タベ", "食べる", "タベル"),
		auxToken("まし", "マシ", "ます", domain.JodoushiMasu),
		auxToken("た", "タ", "た", domain.JodoushiTa),
		particleToken("ね", domain.Shuujoshi),
	}

	words, err := ComposeDefault(tokens)
	require.NoError(t, err)

	total := 0
	for _, w := range words {
		require.NotEmpty(t, w.Tokens, "word %q has no tokens", w.SurfaceForm)
		total += len(w.Tokens)
	}
	assert.Equal(t, len(tokens), total)
}

func TestComposeDeterministic(t *testing.T) {
	t.Parallel()

	tokens := []domain.Token{
		verbToken("食べ", "タベ", "食べる", "タベル"),
		auxToken("た", "タ", "た", domain.JodoushiTa),
		nounToken("猫", "ネコ"),
	}

	first, err := ComposeDefault(tokens)
	require.NoError(t, err)
	second, err := ComposeDefault(tokens)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeMergeWithoutPreviousWordFatal(t *testing.T) {
	t.Parallel()

	// An auxiliary as the very first token with a rule table whose only
	// rule merges unconditionally: broken configuration, not a no-op.
	rules := []Rule{{
		Name:    "always merge",
		Current: TokenPattern{POS1: AnyTag(domain.Jodoushi)},
		Action:  Action{Kind: MergeWithPrevious, AttachSurface: true},
	}}

	_, err := Compose([]domain.Token{auxToken("た", "タ", "た", domain.JodoushiTa)}, rules)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoPreviousWord))
	assert.Contains(t, err.Error(), "always merge")
}

func TestComposeEmptyInput(t *testing.T) {
	t.Parallel()

	words, err := ComposeDefault(nil)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestComposeNaAdjectiveFusion(t *testing.T) {
	t.Parallel()

	keijoushi := domain.Token{
		Surface: "静か", SurfaceReading: "シズカ",
		LemmaForm: "静か", LemmaReading: "シズカ",
		POS1: domain.Keijoushi,
	}
	na := auxToken("な", "ナ", "だ", domain.JodoushiDa)

	words, err := ComposeDefault([]domain.Token{keijoushi, na})
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, domain.AdjectivalNoun, words[0].Category)
	assert.Equal(t, "静かな", words[0].SurfaceForm)
	require.NotNil(t, words[0].Main)
	assert.Equal(t, "静か", words[0].Main.LemmaForm)
}
