// Package deepl is a client for the DeepL translation API: translating
// text, translating whole documents, and querying account usage.
//
// # Creating a Client
//
// Use [New] with an authentication key and functional options. Keys that
// end in ":fx" are routed to the free-tier host automatically:
//
//	api, err := deepl.New(os.Getenv("DEEPL_AUTH_KEY"),
//		deepl.WithTimeout(10*time.Second),
//		deepl.WithUserAgent("myapp/1.0"),
//	)
//
// # Making Calls
//
// Every endpoint returns a prepared call: required parameters go into the
// constructor, optional parameters are fluent setters, and Send drives the
// request to completion. A call performs exactly one network request; a
// second Send returns the cached outcome:
//
//	result, err := api.TranslateText("Hello, world", deepl.LangDE).
//		Formality(deepl.FormalityPreferLess).
//		Send(ctx)
//
// SendAsync returns a [Pending] handle instead of blocking:
//
//	p := api.GetUsage().SendAsync(ctx)
//	// ... do other work ...
//	usage, err := p.Wait()
//
// # Translating Documents
//
// Documents go through upload, status polling, and download:
//
//	doc, err := api.UploadDocument("report.docx", deepl.LangJA).Send(ctx)
//	status, err := api.CheckDocument(*doc).Send(ctx)
//	if status.Done() {
//		_, err = api.DownloadDocument(*doc, "report_ja.docx").Send(ctx)
//	}
//
// Downloading before the translation finishes fails with
// [ErrTranslationNotDone]; a wrong document ID or key fails with
// [ErrDocumentNotFound]. The destination file is written through a temp
// file and renamed into place, so failures never leave partial output.
package deepl
