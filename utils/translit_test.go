package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterateUkrainian(t *testing.T) {
	assert.Equal(t, "Privit, svit!", Transliterate("Привіт, світ!"))
}

func TestTransliterateMultiLetterMappings(t *testing.T) {
	assert.Equal(t, "Zhittya", Transliterate("Життя"))
	assert.Equal(t, "shchuka", Transliterate("щука"))
	assert.Equal(t, "Kharkiv", Transliterate("Харків"))
}

func TestTransliterateFullTable(t *testing.T) {
	cases := []struct{ in, want string }{
		{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"ґ", "g"},
		{"д", "d"}, {"е", "e"}, {"ё", "e"}, {"є", "ye"}, {"ж", "zh"},
		{"з", "z"}, {"и", "i"}, {"і", "i"}, {"ї", "yi"}, {"й", "y"},
		{"к", "k"}, {"л", "l"}, {"м", "m"}, {"н", "n"}, {"о", "o"},
		{"п", "p"}, {"р", "r"}, {"с", "s"}, {"т", "t"}, {"у", "u"},
		{"ф", "f"}, {"х", "kh"}, {"ц", "ts"}, {"ч", "ch"}, {"ш", "sh"},
		{"щ", "shch"}, {"ъ", ""}, {"ы", "y"}, {"ь", ""}, {"э", "e"},
		{"ю", "yu"}, {"я", "ya"},

		{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "G"}, {"Ґ", "G"},
		{"Д", "D"}, {"Е", "E"}, {"Ё", "E"}, {"Є", "Ye"}, {"Ж", "Zh"},
		{"З", "Z"}, {"И", "I"}, {"І", "I"}, {"Ї", "Yi"}, {"Й", "Y"},
		{"К", "K"}, {"Л", "L"}, {"М", "M"}, {"Н", "N"}, {"О", "O"},
		{"П", "P"}, {"Р", "R"}, {"С", "S"}, {"Т", "T"}, {"У", "U"},
		{"Ф", "F"}, {"Х", "Kh"}, {"Ц", "Ts"}, {"Ч", "Ch"}, {"Ш", "Sh"},
		{"Щ", "Shch"}, {"Ъ", ""}, {"Ы", "Y"}, {"Ь", ""}, {"Э", "E"},
		{"Ю", "Yu"}, {"Я", "Ya"},
	}

	require.Len(t, cases, len(cyrillicToLatin), "sweep must cover the whole table")
	for _, tc := range cases {
		assert.Equal(t, tc.want, Transliterate(tc.in), "mapping for %q", tc.in)
	}
}

func TestTransliterateLeavesUnmappedRunesUnchanged(t *testing.T) {
	assert.Equal(t, "hello, world! 123", Transliterate("hello, world! 123"))
	assert.Equal(t, "café", Transliterate("café"))
}

func TestTransliterateMixedInput(t *testing.T) {
	assert.Equal(t, "OCR rezultat: done", Transliterate("OCR результат: done"))
}

func TestTransliterateIdempotentOnASCII(t *testing.T) {
	once := Transliterate("Privit, svit!")
	assert.Equal(t, once, Transliterate(once))
}

func TestTransliterateEmpty(t *testing.T) {
	assert.Equal(t, "", Transliterate(""))
}
