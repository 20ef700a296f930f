package messages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var bundled embed.FS

// Fallback is used when nothing in the request matches a catalog language.
var Fallback = language.English

// Message is the copy of a single alert.
type Message struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Catalog holds alert copy per language.
type Catalog struct {
	messages map[language.Tag]map[Key]Message
	tags     []language.Tag
	matcher  language.Matcher
}

// Parse builds a catalog from one or more YAML documents shaped as
// language -> key -> {heading, body}. English must be present.
func Parse(docs ...[]byte) (*Catalog, error) {
	c := &Catalog{messages: make(map[language.Tag]map[Key]Message)}

	for _, doc := range docs {
		var data map[string]map[Key]Message
		if err := yaml.Unmarshal(doc, &data); err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
		for lang, entries := range data {
			tag, err := language.Parse(lang)
			if err != nil {
				return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
			}
			if c.messages[tag] == nil {
				c.messages[tag] = make(map[Key]Message, len(entries))
			}
			for key, msg := range entries {
				c.messages[tag][key] = msg
			}
		}
	}

	if len(c.messages) == 0 {
		return nil, ErrEmptyCatalog
	}
	if _, ok := c.messages[Fallback]; !ok {
		return nil, ErrNoFallback
	}

	// The matcher treats its first tag as the default.
	c.tags = append(c.tags, Fallback)
	for tag := range c.messages {
		if tag != Fallback {
			c.tags = append(c.tags, tag)
		}
	}
	slices.SortFunc(c.tags[1:], func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// ParseFS loads every *.yaml file in fsys matching pattern.
func ParseFS(fsys fs.FS, pattern string) (*Catalog, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	docs := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, data)
	}
	return Parse(docs...)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the bundled catalog. It panics if the bundled files are
// broken or miss a key.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := ParseFS(bundled, "locales/*.yaml")
		if err != nil {
			panic(err)
		}
		if err := c.Validate(Keys...); err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Validate reports keys missing from the fallback language.
func (c *Catalog) Validate(keys ...Key) error {
	var errs []error
	for _, key := range keys {
		if _, ok := c.messages[Fallback][key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingKey, key))
		}
	}
	return errors.Join(errs...)
}

// Languages returns the catalog languages, fallback first.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

// Match picks the best catalog language for the given preferences,
// highest priority first.
func (c *Catalog) Match(prefs ...language.Tag) language.Tag {
	if len(prefs) == 0 {
		return Fallback
	}
	_, idx, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		return Fallback
	}
	return c.tags[idx]
}

// MatchAcceptLanguage negotiates an Accept-Language header value.
func (c *Catalog) MatchAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Fallback
	}
	return c.Match(tags...)
}

// Get returns the message for key in lang, falling back to English. args
// are name/value pairs substituted for %{name} placeholders. An unknown key
// yields a message whose heading is the key itself.
func (c *Catalog) Get(lang language.Tag, key Key, args ...string) Message {
	msg, ok := c.messages[lang][key]
	if !ok {
		msg, ok = c.messages[Fallback][key]
	}
	if !ok {
		msg = Message{Heading: string(key)}
	}
	params := buildParams(args)
	return Message{
		Heading: substitute(msg.Heading, params),
		Body:    substitute(msg.Body, params),
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// buildParams pairs up name/value arguments. An odd trailing name is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// substitute replaces %{name} placeholders. Unknown names stay as they are.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
