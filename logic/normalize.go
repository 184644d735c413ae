package logic

import "strings"

// transliterations - umlauts and special characters are converted to a
// spelling the platform accepts in login names; built once, read-only
var transliterations = map[rune]string{
	'Ä': "Ae", 'ä': "ae",
	'Ë': "E", 'ë': "e",
	'Ï': "I", 'ï': "i",
	'Ö': "Oe", 'ö': "oe",
	'Ü': "Ue", 'ü': "ue",
	'Ÿ': "Y", 'ÿ': "y",
	'ß': "ss",
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Å': "A",
	'Æ': "Ae",
	'Ç': "C",
	'È': "E", 'É': "E", 'Ê': "E",
	'Ì': "I", 'Í': "I", 'Î': "I",
	'Ð': "D",
	'Ñ': "N",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O",
	'Ø': "Oe", 'Œ': "Oe",
	'Ù': "U", 'Ú': "U", 'Û': "U",
	'Ý': "Y",
	'Þ': "Th",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'å': "a",
	'æ': "ae",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e",
	'ì': "i", 'í': "i", 'î': "i",
	'ð': "d",
	'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o",
	'ø': "oe", 'œ': "oe",
	'ù': "u", 'ú': "u", 'û': "u",
	'ý': "y",
	'þ': "Th",
	'Š': "S", 'š': "s",
	'Č': "C", 'č': "c",
}

// NormalizeLogin - replaces every character present in the
// transliteration table with its ASCII spelling; characters not in the
// table pass through unchanged
func NormalizeLogin(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if repl, ok := transliterations[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
