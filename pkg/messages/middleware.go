package messages

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// DefaultParamName is the cookie and query parameter that override
// Accept-Language.
const DefaultParamName = "lang"

// Middleware negotiates the alert language for each request. The "lang"
// cookie wins, then the "lang" query parameter, then Accept-Language.
func Middleware(c *Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), c.negotiate(r))))
		})
	}
}

func (c *Catalog) negotiate(r *http.Request) language.Tag {
	var prefs []language.Tag
	if cookie, err := r.Cookie(DefaultParamName); err == nil {
		if tag, err := language.Parse(strings.TrimSpace(cookie.Value)); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get(DefaultParamName)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if len(prefs) > 0 {
		// Explicit choice: only fall through to the header when it is unsupported.
		if tag := c.Match(prefs...); tag != Fallback || prefs[0] == Fallback {
			return tag
		}
	}
	return c.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}
