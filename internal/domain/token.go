package domain

// Tag is a single UniDic feature value: one level of the part-of-speech
// hierarchy, a conjugation type, or a conjugation form. Tags are compared
// verbatim against the tokenizer's feature output, so the constants below
// hold the UniDic strings themselves.
type Tag string

// TagUnset is what UniDic emits for an unused feature slot.
const TagUnset Tag = "*"

// POS level 1.
const (
	Daimeshi     Tag = "代名詞"  // pronoun
	Fukushi      Tag = "副詞"   // adverb
	Jodoushi     Tag = "助動詞"  // auxiliary verb
	Doushi       Tag = "動詞"   // verb
	Joshi        Tag = "助詞"   // particle
	Meishi       Tag = "名詞"   // noun
	Keiyoushi    Tag = "形容詞"  // i-adjective
	Keijoushi    Tag = "形状詞"  // adjectival noun
	Setsuzokushi Tag = "接続詞"  // conjunction
	Kandoushi    Tag = "感動詞"  // interjection
	Rentaishi    Tag = "連体詞"  // adnominal
	Kigou        Tag = "記号"   // symbol
	Settouji     Tag = "接頭辞"  // prefix
	Setsubiji    Tag = "接尾辞"  // suffix
	Hojokigou    Tag = "補助記号" // supplementary symbol
	Kuuhaku      Tag = "空白"   // whitespace
	Firaa        Tag = "フィラー" // filler
)

// POS level 2.
const (
	Koyuumeishi    Tag = "固有名詞"  // proper noun
	Futsuumeishi   Tag = "普通名詞"  // common noun
	Suushi         Tag = "数詞"    // numeral
	Hijiritsukanou Tag = "非自立可能" // bound-capable
	Setsuzokujoshi Tag = "接続助詞"  // conjunctive particle
	Kakujoshi      Tag = "格助詞"   // case particle
	Shuujoshi      Tag = "終助詞"   // sentence-final particle
)

// POS level 3.
const (
	Sahenkanou      Tag = "サ変可能"  // can take suru
	Keijoushikanou  Tag = "形状詞可能" // can act as adjectival noun
	Josuushikanou   Tag = "助数詞可能" // can act as counter
	Josuushi        Tag = "助数詞"   // counter
	Jinmei          Tag = "人名"    // person name
	Chimei          Tag = "地名"    // place name
)

// Conjugation types.
const (
	JodoushiDa   Tag = "助動詞-ダ"
	JodoushiTa   Tag = "助動詞-タ"
	JodoushiNu   Tag = "助動詞-ヌ"
	JodoushiNai  Tag = "助動詞-ナイ"
	JodoushiTai  Tag = "助動詞-タイ"
	JodoushiDesu Tag = "助動詞-デス"
	JodoushiMasu Tag = "助動詞-マス"
	Sagyouhenkaku Tag = "サ行変格" // suru-type irregular conjugation
	Kagyouhenkaku Tag = "カ行変格" // kuru-type irregular conjugation
)

// Token is one morpheme as produced by the external tokenizer, annotated
// with the UniDic 4-level part-of-speech hierarchy and conjugation tags.
// Tokens are value types and never modified after creation.
type Token struct {
	Surface string

	POS1     Tag
	POS2     Tag
	POS3     Tag
	POS4     Tag
	ConjType Tag
	ConjForm Tag

	// SurfaceReading is the pronunciation of the surface form,
	// LemmaForm/LemmaReading the dictionary citation form and its
	// pronunciation.
	SurfaceReading string
	LemmaForm      string
	LemmaReading   string
}

// HasPOS reports whether any of the token's four POS levels equals tag.
func (t Token) HasPOS(tag Tag) bool {
	return t.POS1 == tag || t.POS2 == tag || t.POS3 == tag || t.POS4 == tag
}
