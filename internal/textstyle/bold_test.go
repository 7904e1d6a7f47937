package textstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBold_LettersAndDigits(t *testing.T) {
	assert.Equal(t, "𝐉𝐨𝐛 𝐈𝐃", Bold("Job ID"))
	assert.Equal(t, "𝐀𝐙𝐚𝐳𝟎𝟗", Bold("AZaz09"))
}

func TestBold_PassesThroughUnmapped(t *testing.T) {
	for _, s := range []string{"", " ", ":,.!?\n\t", "é", "日本語", "— –"} {
		assert.Equal(t, s, Bold(s), "input %q", s)
	}
}

func TestBold_MixedKeepsPunctuation(t *testing.T) {
	assert.Equal(t, "𝐈'𝐝 𝐛𝐞 𝐠𝐫𝐚𝐭𝐞𝐟𝐮𝐥.", Bold("I'd be grateful."))
}

func TestBold_PreservesRuneCount(t *testing.T) {
	in := "Referral for SDE-2 (J1)"
	assert.Equal(t, len([]rune(in)), len([]rune(Bold(in))))
}

func TestBold_AlreadyBoldUnchanged(t *testing.T) {
	once := Bold("Resume")
	assert.Equal(t, once, Bold(once))
}

func TestPlain_FoldsBold(t *testing.T) {
	assert.Equal(t, "Job ID: J1", Plain(Bold("Job ID")+": J1"))
	assert.Equal(t, "plain text", Plain("plain text"))
}
