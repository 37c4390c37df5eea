package domain

// Category is the grammatical classification assigned to a composed Word.
// The set is closed; rules and the default POS table only ever produce
// values from this list.
type Category string

const (
	Noun           Category = "Noun"
	ProperNoun     Category = "ProperNoun"
	CompoundNoun   Category = "CompoundNoun"
	Pronoun        Category = "Pronoun"
	Adjective      Category = "Adjective"
	AdjectivalNoun Category = "AdjectivalNoun"
	Adverb         Category = "Adverb"
	Determiner     Category = "Determiner"
	Preposition    Category = "Preposition"
	Postposition   Category = "Postposition"
	Verb           Category = "Verb"
	SuruVerb       Category = "SuruVerb"
	Suffix         Category = "Suffix"
	Prefix         Category = "Prefix"
	Conjunction    Category = "Conjunction"
	Interjection   Category = "Interjection"
	Number         Category = "Number"
	Counter        Category = "Counter"
	Symbol         Category = "Symbol"
	Expression     Category = "Expression"
	Onomatopoeia   Category = "Onomatopoeia"
	Other          Category = "Other"
	UnknownWord    Category = "Unknown"
)

// Word is a citable unit composed from one or more tokens. Created once by
// the composer and read-only afterward. Tokens is never empty.
type Word struct {
	SurfaceForm    string
	SurfaceReading string
	LemmaForm      string
	LemmaReading   string
	Category       Category
	Tokens         []Token

	// Main points at the semantically primary token for multi-token words
	// (e.g. 勉強 in 勉強します). It holds its own copy of the token; nil when
	// no rule designated one.
	Main *Token
}

// DefaultCategory maps a token's POS tags to a word category. Used when no
// composition rule matched the token.
func DefaultCategory(t Token) Category {
	switch t.POS1 {
	case Meishi:
		switch t.POS2 {
		case Koyuumeishi:
			return ProperNoun
		case Suushi:
			return Number
		}
		return Noun
	case Doushi:
		return Verb
	case Keiyoushi, Keijoushi:
		return Adjective
	case Fukushi:
		return Adverb
	case Joshi, Jodoushi:
		return Postposition
	case Rentaishi:
		return Determiner
	case Setsuzokushi:
		return Conjunction
	case Settouji:
		return Prefix
	case Setsubiji:
		if t.POS3 == Josuushi {
			return Counter
		}
		return Suffix
	case Kigou, Hojokigou:
		return Symbol
	case Daimeshi:
		return Pronoun
	case Kandoushi, Firaa:
		return Interjection
	}
	return Other
}
