package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var semAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar remove acentos e baixa a caixa para comparação de nomes de material
// ("Treliça Q30" -> "trelica q30"). Se a transformação falhar, devolve só o lowercase.
func Normalizar(s string) string {
	out, _, err := transform.String(semAcentos, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
