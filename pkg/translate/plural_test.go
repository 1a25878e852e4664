package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lingua/pkg/translate"
)

func TestSimpleRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, translate.PluralOne, translate.SimpleRule(1))
	assert.Equal(t, translate.PluralOne, translate.SimpleRule(-1))
	assert.Equal(t, translate.PluralOther, translate.SimpleRule(0))
	assert.Equal(t, translate.PluralOther, translate.SimpleRule(2))
	assert.Equal(t, translate.PluralOther, translate.SimpleRule(100))
}

func TestRomanceRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, translate.PluralOne, translate.RomanceRule(0))
	assert.Equal(t, translate.PluralOne, translate.RomanceRule(1))
	assert.Equal(t, translate.PluralOther, translate.RomanceRule(2))
}

func TestCzechRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, translate.PluralOne, translate.CzechRule(1))
	for n := 2; n <= 4; n++ {
		assert.Equal(t, translate.PluralFew, translate.CzechRule(n), "n=%d", n)
	}
	assert.Equal(t, translate.PluralOther, translate.CzechRule(0))
	assert.Equal(t, translate.PluralOther, translate.CzechRule(5))
	assert.Equal(t, translate.PluralFew, translate.CzechRule(-3))
}

func TestSlavicRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, translate.PluralOne, translate.SlavicRule(1))
	assert.Equal(t, translate.PluralOne, translate.SlavicRule(21))
	assert.Equal(t, translate.PluralMany, translate.SlavicRule(11))
	assert.Equal(t, translate.PluralFew, translate.SlavicRule(2))
	assert.Equal(t, translate.PluralFew, translate.SlavicRule(24))
	assert.Equal(t, translate.PluralMany, translate.SlavicRule(12))
	assert.Equal(t, translate.PluralMany, translate.SlavicRule(0))
	assert.Equal(t, translate.PluralMany, translate.SlavicRule(100))
}

func TestRuleFor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		n    int
		want string
	}{
		"en":    {0, translate.PluralOther},
		"de":    {1, translate.PluralOne},
		"fr":    {0, translate.PluralOne},
		"es":    {0, translate.PluralOne},
		"cs":    {3, translate.PluralFew},
		"ua":    {5, translate.PluralMany},
		"uk":    {22, translate.PluralFew},
		"cs-CZ": {2, translate.PluralFew},
		"xx":    {2, translate.PluralOther},
	}
	for code, tc := range cases {
		assert.Equal(t, tc.want, translate.RuleFor(code)(tc.n), "locale %s n=%d", code, tc.n)
	}
}
