// Package i18n renders message tags into human readable text.
package i18n

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/georgepadayatti/goades/ades"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Provider renders message tags for one locale.
type Provider struct {
	printer *message.Printer
	lang    language.Tag
}

// NewProvider creates a provider for the given locale (e.g. "en", "en-GB").
// Unknown or unparsable locales fall back to English.
func NewProvider(locale string) *Provider {
	cat := builtin()
	lang := language.English
	if locale != "" {
		if requested, err := language.Parse(locale); err == nil {
			_, idx, _ := cat.Matcher().Match(requested)
			lang = cat.Languages()[idx]
		}
	}
	return &Provider{
		printer: message.NewPrinter(lang, message.Catalog(cat)),
		lang:    lang,
	}
}

// Language returns the language tag of the provider.
func (p *Provider) Language() language.Tag {
	return p.lang
}

// Text renders a tag with its arguments. Arguments that are message tags are
// rendered first; times are rendered in RFC 3339 UTC.
func (p *Provider) Text(tag ades.MessageTag, args ...any) string {
	if len(args) == 0 {
		return p.printer.Sprintf(string(tag))
	}
	rendered := make([]any, len(args))
	for i, a := range args {
		rendered[i] = p.arg(a)
	}
	return p.printer.Sprintf(string(tag), rendered...)
}

// Message builds a conclusion note for a tag.
func (p *Provider) Message(tag ades.MessageTag, args ...any) ades.Message {
	return ades.Message{Key: tag, Value: p.Text(tag, args...)}
}

// Semantics returns the description of an indication or sub-indication.
func (p *Provider) Semantics(value string) string {
	return p.printer.Sprintf(string(ades.SemanticsTag(value)))
}

func (p *Provider) arg(a any) string {
	switch v := a.(type) {
	case ades.MessageTag:
		return p.Text(v)
	case time.Time:
		return FormatTime(v)
	case *time.Time:
		if v == nil {
			return "-"
		}
		return FormatTime(*v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(a)
}

// FormatTime renders a time the way every report note does.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func builtin() *catalog.Builder {
	entries := make(map[string]string, len(english)+len(semantics))
	for k, v := range english {
		entries[string(k)] = v
	}
	for k, v := range semantics {
		entries[string(ades.SemanticsTag(k))] = v
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, k := range keys {
		// SetString only fails on malformed language tags.
		_ = b.SetString(language.English, k, entries[k])
	}
	return b
}
