package simulator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocaleFor(t *testing.T) {
	require.Equal(t, Locale{Language: "pt", Locale: "pt-BR", Dir: "pt-BR"}, LocaleFor("pt-BR"))
	require.Equal(t, Locale{Language: "en", Locale: "en", Dir: "en"}, LocaleFor("en"))
	require.Equal(t, Locale{Language: "pt", Locale: "pt", Dir: "pt"}, LocaleFor("pt"))
}

func TestLocaleAppArgs(t *testing.T) {
	args := LocaleFor("pt-BR").AppArgs("/shots/pt-BR")
	require.Equal(t, []string{"-AppleLanguages", "(pt)", "-AppleLocale", "pt-BR", "/shots/pt-BR"}, args)
}
