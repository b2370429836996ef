package languages

import (
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Translation targets the pipeline has prompt coverage for. Free-form
// target languages are still accepted by the workflow; this registry
// canonicalizes the common cases.
var supportedTags = []language.Tag{
	language.Arabic,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Dutch,
	language.English,
	language.French,
	language.German,
	language.Hindi,
	language.Italian,
	language.Japanese,
	language.Korean,
	language.Polish,
	language.BrazilianPortuguese,
	language.EuropeanPortuguese,
	language.Russian,
	language.EuropeanSpanish,
	language.LatinAmericanSpanish,
	language.Swedish,
	language.Turkish,
	language.Ukrainian,
	language.Vietnamese,
}

type registry struct {
	languages []Language
	byCode    map[string]*Language
	byName    map[string]*Language
	logger    *slog.Logger
}

// New builds the language registry from the supported BCP 47 tags.
func New(logger *slog.Logger) System {
	english := display.English.Languages()
	self := display.Self

	items := make([]Language, 0, len(supportedTags))
	for _, tag := range supportedTags {
		native := self.Name(tag)
		native = cases.Title(tag).String(native)

		items = append(items, Language{
			Code:       tag.String(),
			Name:       english.Name(tag),
			NativeName: native,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	byCode := make(map[string]*Language, len(items))
	byName := make(map[string]*Language, len(items))
	for i := range items {
		l := &items[i]
		byCode[strings.ToLower(l.Code)] = l
		byName[strings.ToLower(l.Name)] = l
		byName[strings.ToLower(l.NativeName)] = l
	}

	return &registry{
		languages: items,
		byCode:    byCode,
		byName:    byName,
		logger:    logger.With("system", "languages"),
	}
}

func (r *registry) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *registry) List() []Language {
	return r.languages
}

func (r *registry) Find(code string) (*Language, error) {
	if l, ok := r.byCode[strings.ToLower(strings.TrimSpace(code))]; ok {
		return l, nil
	}

	// A regional variant like fr-CA still matches its base language.
	tag, err := language.Parse(code)
	if err != nil {
		return nil, ErrNotFound
	}

	base, conf := tag.Base()
	if conf == language.No {
		return nil, ErrNotFound
	}

	if l, ok := r.byCode[strings.ToLower(base.String())]; ok {
		return l, nil
	}
	return nil, ErrNotFound
}

func (r *registry) Resolve(value string) (*Language, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return nil, ErrNotFound
	}

	if l, ok := r.byName[v]; ok {
		return l, nil
	}
	return r.Find(v)
}
