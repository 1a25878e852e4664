// Package i18nhttp adapts the translation runtime to stateless per-request
// rendering paths.
//
// The [Accessor] reads the locale from the request — preference cookie first,
// then Accept-Language, then the default — and hands back a translator backed
// by the same shared dictionary store the rest of the application uses, so a
// server-rendered page and a client-driven one produce identical text for the
// same locale and key.
//
//	acc := i18nhttp.New(store)
//	tr, code := acc.Translator(r)
//	tr.T("page.title")
//
// For handler chains, [Accessor.Middleware] resolves once per request and
// stores the translator and locale in the request context.
package i18nhttp
