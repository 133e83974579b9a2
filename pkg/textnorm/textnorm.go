// Package textnorm normaliza nombres de clientes y productos para compararlos
// sin importar mayúsculas, acentos ni espacios repetidos ("Padaria São João" == "padaria sao  joao").
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key devuelve la clave normalizada de s: minúsculas, sin diacríticos y con espacios colapsados.
func Key(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// Contains indica si la clave de s contiene la clave de sub.
func Contains(s, sub string) bool {
	return strings.Contains(Key(s), Key(sub))
}
