package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns "Jaipur, Rajasthan" into "jaipur-rajasthan".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugUnsafe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ShortName takes the part of a destination before the first comma,
// e.g. "Jaipur, Rajasthan" -> "Jaipur".
func ShortName(destination string) string {
	name := strings.TrimSpace(strings.Split(destination, ",")[0])
	if name == "" {
		return "the destination"
	}
	return name
}

// TitleCase uppercases the first letter of each word; used to turn a
// slug back into a display name ("goa-beaches" -> "Goa Beaches").
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
