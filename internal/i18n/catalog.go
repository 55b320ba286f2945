package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrMessageNotFound is returned when no language defines a message id
var ErrMessageNotFound = errors.New("message not found")

// Catalog maps message ids to text templates per language. Templates use
// {name} placeholders filled by Format.
type Catalog struct {
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// NewCatalog returns the built-in English and Brazilian Portuguese catalog.
// English is first and therefore the fallback for unmatched languages.
func NewCatalog() *Catalog {
	return newCatalog(
		[]language.Tag{language.English, language.BrazilianPortuguese},
		[]map[string]string{english, portuguese},
	)
}

func newCatalog(tags []language.Tag, messages []map[string]string) *Catalog {
	return &Catalog{
		tags:     tags,
		messages: messages,
		matcher:  language.NewMatcher(tags),
	}
}

// Match returns the supported language closest to lang.
func (c *Catalog) Match(lang string) language.Tag {
	return c.tags[c.index(lang)]
}

func (c *Catalog) index(lang string) int {
	_, idx := language.MatchStrings(c.matcher, strings.ReplaceAll(lang, "_", "-"))
	return idx
}

// Resolve returns the template for id in the language closest to lang,
// falling back to the default language when the match lacks the id.
func (c *Catalog) Resolve(id, lang string) (string, error) {
	idx := c.index(lang)
	if msg, ok := c.messages[idx][id]; ok {
		return msg, nil
	}
	if msg, ok := c.messages[0][id]; ok {
		return msg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMessageNotFound, id)
}

// Languages lists the supported BCP 47 tags.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Format replaces every {key} in template with its value. Keys are applied
// in sorted order so the result does not depend on map iteration.
func Format(template string, args map[string]string) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", args[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
