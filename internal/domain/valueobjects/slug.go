package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalidChars   = regexp.MustCompile(`[^\w\-]`)
	slugHyphenCollapse = regexp.MustCompile(`-+`)
)

// Slugify deriva a chave de URL a partir do nome de exibição:
// minúsculas, espaços viram hífen, caracteres fora de \w são removidos,
// hífens repetidos são colapsados e hífens nas pontas são cortados
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugHyphenCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugWithSuffix retorna o candidato de colisão de índice n:
// n == 0 retorna o slug base, n > 0 retorna "base-n"
func SlugWithSuffix(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
