// Package cookie provides a small, options-configured manager for plain HTTP
// cookies.
//
// The locale preference this module persists is public, non-sensitive data,
// so the manager deliberately handles only plain values — no signing or
// encryption layer to misconfigure.
//
//	m := cookie.New(cookie.WithSecure(true))
//	m.Set(w, "lang", "de", 365*24*3600)
//	value, err := m.Get(r, "lang")
package cookie
