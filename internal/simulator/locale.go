package simulator

// Locale is the language setup for one simulator launch
type Locale struct {
	// Language is passed as -AppleLanguages.
	Language string
	// Locale is passed as -AppleLocale.
	Locale string
	// Dir is the output subdirectory name.
	Dir string
}

// languageAliases maps locale codes to the language the simulator accepts
var languageAliases = map[string]string{
	"pt-BR": "pt",
}

// LocaleFor returns the launch settings for a configured language code
func LocaleFor(code string) Locale {
	lang := code
	if alias, ok := languageAliases[code]; ok {
		lang = alias
	}
	return Locale{Language: lang, Locale: code, Dir: code}
}

// AppArgs returns the arguments handed to the app: its language settings
// followed by the directory it should write screenshots to.
func (l Locale) AppArgs(outDir string) []string {
	return []string{"-AppleLanguages", "(" + l.Language + ")", "-AppleLocale", l.Locale, outDir}
}
