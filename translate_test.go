package deepl_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/deepl"
)

const testAuthKey = "test-key"

func newTestAPI(t *testing.T, handler http.HandlerFunc) *deepl.API {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	api, err := deepl.New(testAuthKey, deepl.WithServer(ts.URL))
	if err != nil {
		t.Fatalf("failed to create api: %v", err)
	}

	return api
}

func TestTranslateText_RequiredFields(t *testing.T) {
	var gotForm map[string][]string

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/translate" {
			t.Errorf("expected path /translate, got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "DeepL-Auth-Key "+testAuthKey {
			t.Errorf("unexpected Authorization header: %q", auth)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotForm = r.PostForm

		fmt.Fprint(w, `{"translations":[{"detected_source_language":"EN","text":"Hallo, Welt"}]}`)
	})

	result, err := api.TranslateText("Hello, world", deepl.LangDE).Send(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := &deepl.TranslateResult{
		Translations: []deepl.Translation{
			{DetectedSourceLanguage: "EN", Text: "Hallo, Welt"},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}

	if got := gotForm["text"]; len(got) != 1 || got[0] != "Hello, world" {
		t.Errorf("unexpected text field: %v", got)
	}
	if got := gotForm["target_lang"]; len(got) != 1 || got[0] != "DE" {
		t.Errorf("unexpected target_lang field: %v", got)
	}

	// Unset optional fields must be absent from the wire form.
	for _, field := range []string{"source_lang", "formality", "glossary_id", "split_sentences", "preserve_formatting", "tag_handling"} {
		if _, ok := gotForm[field]; ok {
			t.Errorf("optional field %s should be omitted, got %v", field, gotForm[field])
		}
	}
}

func TestTranslateText_OptionalFields(t *testing.T) {
	var gotForm map[string][]string

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotForm = r.PostForm

		fmt.Fprint(w, `{"translations":[]}`)
	})

	_, err := api.TranslateText("Hello", deepl.LangJA).
		SourceLang(deepl.LangEN).
		SplitSentences(deepl.SplitNoNewlines).
		PreserveFormatting(true).
		Formality(deepl.FormalityPreferLess).
		GlossaryID("g-123").
		TagHandling(deepl.TagHandlingXML).
		NonSplittingTags("br", "wbr").
		SplittingTags("p").
		IgnoreTags("code").
		Send(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := map[string]string{
		"text":                "Hello",
		"target_lang":         "JA",
		"source_lang":         "EN",
		"split_sentences":     "nonewlines",
		"preserve_formatting": "1",
		"formality":           "prefer_less",
		"glossary_id":         "g-123",
		"tag_handling":        "xml",
		"non_splitting_tags":  "br,wbr",
		"splitting_tags":      "p",
		"ignore_tags":         "code",
	}
	for field, value := range want {
		got, ok := gotForm[field]
		if !ok {
			t.Errorf("field %s missing from form", field)
			continue
		}
		if len(got) != 1 {
			t.Errorf("field %s set %d times, want exactly once", field, len(got))
			continue
		}
		if got[0] != value {
			t.Errorf("field %s = %q, want %q", field, got[0], value)
		}
	}
}

func TestTranslateText_LastSetWins(t *testing.T) {
	var gotForm map[string][]string

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotForm = r.PostForm

		fmt.Fprint(w, `{"translations":[]}`)
	})

	_, err := api.TranslateText("Hello", deepl.LangDE).
		Formality(deepl.FormalityMore).
		Formality(deepl.FormalityLess).
		Send(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if got := gotForm["formality"]; len(got) != 1 || got[0] != "less" {
		t.Errorf("formality = %v, want [less]", got)
	}
}

func TestTranslateText_SendOnce(t *testing.T) {
	var hits int

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"translations":[{"detected_source_language":"EN","text":"Hallo"}]}`)
	})

	c := api.TranslateText("Hello", deepl.LangDE)

	first, err := c.Send(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// A second Send returns the cached outcome without another request,
	// and setters applied in between have no effect.
	c.Formality(deepl.FormalityMore)
	second, err := c.Send(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if hits != 1 {
		t.Errorf("expected exactly 1 request, got %d", hits)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached result differs (-first +second):\n%s", diff)
	}
}

func TestTranslateText_RequestFail(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(456)
		fmt.Fprint(w, `{"message":"quota exceeded"}`)
	})

	_, err := api.TranslateText("Hello", deepl.LangDE).Send(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var reqErr *deepl.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.Message != "quota exceeded" {
		t.Errorf("message = %q, want %q", reqErr.Message, "quota exceeded")
	}
	if reqErr.StatusCode != 456 {
		t.Errorf("status = %d, want 456", reqErr.StatusCode)
	}
	if !errors.Is(err, deepl.ErrRequestFailed) {
		t.Errorf("expected errors.Is(err, ErrRequestFailed)")
	}
}

func TestTranslateText_InvalidErrorResponse(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `<html>gateway error</html>`)
	})

	_, err := api.TranslateText("Hello", deepl.LangDE).Send(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var invErr *deepl.InvalidResponseError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *InvalidResponseError, got %T: %v", err, err)
	}
	if invErr.Detail == "" {
		t.Error("expected a decode-failure description, got empty detail")
	}
	if !errors.Is(err, deepl.ErrInvalidResponse) {
		t.Errorf("expected errors.Is(err, ErrInvalidResponse)")
	}
}

func TestTranslateText_InvalidSuccessBody(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	})

	_, err := api.TranslateText("Hello", deepl.LangDE).Send(context.Background())
	if !errors.Is(err, deepl.ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestTranslateText_EmptyTextRejected(t *testing.T) {
	var hits int

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"translations":[]}`)
	})

	_, err := api.TranslateText("", deepl.LangDE).Send(context.Background())
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	var fields deepl.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	if hits != 0 {
		t.Errorf("expected no network call, got %d", hits)
	}
}
