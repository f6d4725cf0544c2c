package deepl

// Formality controls whether the translated text should lean towards
// formal or informal language.
type Formality int

const (
	FormalityDefault Formality = iota
	FormalityMore
	FormalityLess
	FormalityPreferMore
	FormalityPreferLess
)

func (f Formality) String() string {
	switch f {
	case FormalityMore:
		return "more"
	case FormalityLess:
		return "less"
	case FormalityPreferMore:
		return "prefer_more"
	case FormalityPreferLess:
		return "prefer_less"
	case FormalityDefault:
		return "default"
	default:
		return "default"
	}
}

// MarshalText makes Formality usable directly in serialized payloads.
func (f Formality) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// SplitSentences controls how the service splits input text into sentences
// before translating.
type SplitSentences int

const (
	// SplitNone disables sentence splitting entirely.
	SplitNone SplitSentences = iota
	// SplitPunctuationAndNewlines splits on punctuation and on newlines.
	// This is the service default.
	SplitPunctuationAndNewlines
	// SplitNoNewlines splits on punctuation only, ignoring newlines.
	SplitNoNewlines
)

func (s SplitSentences) String() string {
	switch s {
	case SplitNone:
		return "0"
	case SplitNoNewlines:
		return "nonewlines"
	default:
		return "1"
	}
}

// TagHandling tells the service which markup flavor to honor when
// translating tagged text.
type TagHandling string

const (
	TagHandlingXML  TagHandling = "xml"
	TagHandlingHTML TagHandling = "html"
)

// DocumentState reports where an uploaded document is in the translation
// pipeline.
type DocumentState string

const (
	DocumentQueued      DocumentState = "queued"
	DocumentTranslating DocumentState = "translating"
	DocumentDone        DocumentState = "done"
	DocumentError       DocumentState = "error"
)
