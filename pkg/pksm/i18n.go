package pksm

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed data/locales/*.toml
var localeFS embed.FS

// Localizer resolves message ids such as "A_SELECT" in the configured
// language, falling back to English and finally to the id itself.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer loads the embedded locales and localizes for lang, a BCP 47
// tag such as "en" or "de".
func NewLocalizer(lang string) (*Localizer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "data/locales/*.toml")
	if err != nil {
		return nil, NewInfrastructureError("load_locale", err)
	}
	for _, name := range files {
		buf, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, NewInfrastructureError("load_locale", err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, path.Base(name)); err != nil {
			return nil, NewInfrastructureError("load_locale", fmt.Errorf("%s: %w", name, err))
		}
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Tag returns the requested language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for id. Missing messages yield id itself so a gap
// in a locale is visible but harmless.
func (l *Localizer) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Tf returns the message for id rendered with data.
func (l *Localizer) Tf(id string, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural returns the message for id in the plural form for count. The
// template sees the count as .Count.
func (l *Localizer) Plural(id string, count int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	s, err := l.localizer.Localize(cfg)
	if err != nil {
		internal.GetInternalLogger().Debug("Missing translation", "id", cfg.MessageID, "lang", l.tag.String(), "error", err)
		if s == "" {
			return cfg.MessageID
		}
	}
	return s
}
