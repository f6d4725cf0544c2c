package deepl

import (
	"context"
	"net/url"
	"strings"
)

// Translation is a single translated text with the source language the
// service detected.
type Translation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
}

// TranslateResult is the response of the translate endpoint.
type TranslateResult struct {
	Translations []Translation `json:"translations"`
}

type translateParams struct {
	Text       string   `form:"text" validate:"required"`
	TargetLang Language `form:"target_lang" validate:"required"`

	SourceLang         *Language
	SplitSentences     *SplitSentences
	PreserveFormatting *bool
	Formality          *Formality
	GlossaryID         *string
	TagHandling        *TagHandling
	NonSplittingTags   []string
	SplittingTags      []string
	IgnoreTags         []string
}

// TranslateCall is a prepared request against the translate endpoint.
// Configure it with the fluent setters, then drive it with Send.
type TranslateCall struct {
	call[*TranslateResult]
	params translateParams
}

// TranslateText prepares a translation of text into targetLang.
func (api *API) TranslateText(text string, targetLang Language) *TranslateCall {
	c := &TranslateCall{
		params: translateParams{Text: text, TargetLang: targetLang},
	}
	c.call = call[*TranslateResult]{api: api, name: "translate", run: c.send}

	return c
}

// SourceLang sets the language of the input text. Unset, the service
// detects it.
func (c *TranslateCall) SourceLang(lang Language) *TranslateCall {
	c.params.SourceLang = &lang
	return c
}

// SplitSentences controls sentence splitting of the input text.
func (c *TranslateCall) SplitSentences(s SplitSentences) *TranslateCall {
	c.params.SplitSentences = &s
	return c
}

// PreserveFormatting prevents the service from correcting punctuation
// and casing in the input.
func (c *TranslateCall) PreserveFormatting(preserve bool) *TranslateCall {
	c.params.PreserveFormatting = &preserve
	return c
}

// Formality sets the desired register of the translated text.
func (c *TranslateCall) Formality(f Formality) *TranslateCall {
	c.params.Formality = &f
	return c
}

// GlossaryID applies a glossary to the translation.
func (c *TranslateCall) GlossaryID(id string) *TranslateCall {
	c.params.GlossaryID = &id
	return c
}

// TagHandling enables markup-aware translation for XML or HTML input.
func (c *TranslateCall) TagHandling(t TagHandling) *TranslateCall {
	c.params.TagHandling = &t
	return c
}

// NonSplittingTags lists XML tags that never split sentences.
func (c *TranslateCall) NonSplittingTags(tags ...string) *TranslateCall {
	c.params.NonSplittingTags = tags
	return c
}

// SplittingTags lists XML tags that always split sentences.
func (c *TranslateCall) SplittingTags(tags ...string) *TranslateCall {
	c.params.SplittingTags = tags
	return c
}

// IgnoreTags lists XML tags whose content is never translated.
func (c *TranslateCall) IgnoreTags(tags ...string) *TranslateCall {
	c.params.IgnoreTags = tags
	return c
}

func (c *TranslateCall) send(ctx context.Context) (*TranslateResult, error) {
	if err := validateParams(&c.params); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("text", c.params.Text)
	form.Set("target_lang", string(c.params.TargetLang))

	if v := c.params.SourceLang; v != nil {
		form.Set("source_lang", string(*v))
	}
	if v := c.params.SplitSentences; v != nil {
		form.Set("split_sentences", v.String())
	}
	if v := c.params.PreserveFormatting; v != nil {
		form.Set("preserve_formatting", boolParam(*v))
	}
	if v := c.params.Formality; v != nil {
		form.Set("formality", v.String())
	}
	if v := c.params.GlossaryID; v != nil {
		form.Set("glossary_id", *v)
	}
	if v := c.params.TagHandling; v != nil {
		form.Set("tag_handling", string(*v))
	}
	if v := c.params.NonSplittingTags; len(v) > 0 {
		form.Set("non_splitting_tags", strings.Join(v, ","))
	}
	if v := c.params.SplittingTags; len(v) > 0 {
		form.Set("splitting_tags", strings.Join(v, ","))
	}
	if v := c.params.IgnoreTags; len(v) > 0 {
		form.Set("ignore_tags", strings.Join(v, ","))
	}

	return postForm[TranslateResult](ctx, c.api, "translate", form)
}

// boolParam renders a bool the way the form API expects it.
func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
