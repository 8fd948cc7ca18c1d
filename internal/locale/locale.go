package locale

import (
	"bytes"
	_ "embed"
	"log"
	"strconv"
	"text/template"

	"github.com/nicksnyder/go-i18n/i18n"
)

//go:embed en-us.yaml
var enUS []byte

var translateFunction i18n.TranslateFunc

func init() {
	if err := i18n.ParseTranslationFileBytes("en-us.yaml", enUS); err != nil {
		log.Panicf("Could not load translation catalog: %v", err)
	}

	var err error
	translateFunction, err = i18n.Tfunc("en-US")
	if err != nil {
		log.Panicf("Could not set up translation function: %v", err)
	}
}

// T aliases to i18n.Tfunc()
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr is like T but accepts a variadic list of values that are exposed to the
// translation as {{.V0}}, {{.V1}}, etc.
func Tr(translationID string, values ...string) string {
	return T(translationID, indexedArgs(values))
}

// Tl is like Tr, but if the translation ID has no entry in the catalog the
// given locale string is used as the translation instead
func Tl(translationID, locale string, values ...string) string {
	args := indexedArgs(values)
	translation := T(translationID, args)
	if translation != translationID {
		return translation
	}
	return expand(locale, args)
}

func indexedArgs(values []string) map[string]interface{} {
	args := map[string]interface{}{}
	for i, v := range values {
		args["V"+strconv.Itoa(i)] = v
	}
	return args
}

func expand(locale string, args map[string]interface{}) string {
	tpl, err := template.New("locale").Parse(locale)
	if err != nil {
		return locale
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, args); err != nil {
		return locale
	}
	return out.String()
}
