package utils

import (
	"fmt"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/denguetect/denguetect-api/schema"
)

// SupportedLanguages are the message files loaded from the i18n directory.
var SupportedLanguages = []string{"en", "fil"}

var bundle *i18n.Bundle

func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range SupportedLanguages {
		if _, err := b.LoadMessageFile(path.Join(dir, lang+".yaml")); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
	}
	return i18n.NewLocalizer(bundle, lang)
}

// LocalizedSymptom is a symptom with its name and description translated.
type LocalizedSymptom struct {
	ID       schema.SymptomType     `json:"id"`
	Name     string                 `json:"name"`
	Desc     string                 `json:"desc"`
	Category schema.SymptomCategory `json:"category"`
	Severity string                 `json:"severity"`
	Weight   float64                `json:"weight"`
}

// LocalizeSymptoms translates the given symptoms. Missing translations fall
// back to the built-in English text.
func LocalizeSymptoms(lang string, symptoms []schema.Symptom) []LocalizedSymptom {
	loc := NewLocalizer(lang)

	result := make([]LocalizedSymptom, 0, len(symptoms))
	for _, s := range symptoms {
		l := LocalizedSymptom{
			ID:       s.ID,
			Name:     s.Name,
			Desc:     s.Desc,
			Category: s.Category,
			Severity: s.Severity,
			Weight:   s.Weight,
		}

		if name, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("symptoms.%s.name", s.ID),
		}); err == nil {
			l.Name = name
		}
		if desc, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("symptoms.%s.desc", s.ID),
		}); err == nil {
			l.Desc = desc
		}

		result = append(result, l)
	}

	return result
}
