package wordcount

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "Hello WORLD", "hello world"},
		{"punctuation", "Hello, world! (again)", "hello world again"},
		{"contraction", "Don't stop", "dont stop"},
		{"hyphen joins", "state-of-the-art", "stateoftheart"},
		{"underscore and digits", "snake_case 42 v2.0", "snake_case 42 v20"},
		{"whitespace kept", "a\tb\nc  d", "a\tb\nc  d"},
		{"accents", "Naïve CAFÉ", "naïve café"},
		{"decomposed accents", "nai\u0308ve", "na\u00efve"},
		{"sharp s", "Straße", "straße"},
		{"inverted marks", "¡Hola! ¿Qué?", "hola qué"},
		{"cyrillic", "Привет, МИР", "привет мир"},
		{"cjk", "你好，世界", "你好世界"},
		{"symbols", "1 + 1 = 2 $ %", "1  1  2  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"punctuation only", "!?. ,;", nil},
		{"runs of whitespace", "  hello \t\n world  ", []string{"hello", "world"}},
		{"punctuation is not a separator", "Hello,world", []string{"helloworld"}},
		{"unicode spaces", "a\u00a0b\u2003c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWordRune(t *testing.T) {
	for _, r := range []rune{'a', 'Z', 'é', '_', '0', '\u0663', '\u2177', '\u0301', '你'} {
		assert.Truef(t, IsWordRune(r), "%q", r)
	}
	for _, r := range []rune{' ', '\t', ',', '.', '!', '?', '\'', '"', '-', '\u2014', '(', '$', '+', '€'} {
		assert.Falsef(t, IsWordRune(r), "%q", r)
	}
}

var textAlphabet = []rune("aAbBzZ019_éÉßя ,.!?'-\t\n ")

func TestProperty_SumInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom(textAlphabet)).Draw(rt, "text")

		tokens := Tokenize(text)
		freq := Count(text)

		require.Equal(rt, len(tokens), freq.Total())

		for _, tok := range tokens {
			require.NotEmpty(rt, tok)
			require.False(rt, strings.ContainsFunc(tok, unicode.IsSpace), "token %q", tok)
			require.True(rt, freq.Count(tok) > 0, "token %q", tok)
		}
	})
}

func TestProperty_WhitespaceInsensitive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOf(
			rapid.StringMatching(`[A-Za-z0-9]{1,8}`),
		).Draw(rt, "words")
		seps := rapid.SliceOfN(
			rapid.StringMatching(`[ \t\n]{1,4}`), len(words), len(words),
		).Draw(rt, "seps")

		var messy strings.Builder
		for i, w := range words {
			messy.WriteString(seps[i])
			messy.WriteString(w)
		}

		want := Count(strings.Join(words, " "))
		got := Count(messy.String())

		require.Equal(rt, want.Map(), got.Map())
	})
}

func TestProperty_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom(textAlphabet)).Draw(rt, "text")
		require.NoError(rt, os.WriteFile(path, []byte(text), 0o644))

		wc := New(path)

		first, err := wc.CountWords()
		require.NoError(rt, err)
		second, err := wc.CountWords()
		require.NoError(rt, err)

		require.True(rt, first.Equal(second))
		require.Equal(rt, Count(text).Map(), first.Map())
	})
}
