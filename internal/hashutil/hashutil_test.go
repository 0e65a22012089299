package hashutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintFormat(t *testing.T) {
	fp := Fingerprint([][]string{{"김민수", "대치초", "초3"}})
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}$`), fp)
}

func TestFingerprintDeterministic(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c"}}
	assert.Equal(t, Fingerprint(rows), Fingerprint([][]string{{"a", "b"}, {"c"}}))
}

func TestFingerprintBoundaries(t *testing.T) {
	assert.NotEqual(t, Fingerprint([][]string{{"ab", "c"}}), Fingerprint([][]string{{"a", "bc"}}))
	assert.NotEqual(t, Fingerprint([][]string{{"a"}, {"b"}}), Fingerprint([][]string{{"a", "b"}}))
}

func TestFingerprintChangesWithContent(t *testing.T) {
	before := Fingerprint([][]string{{"김민수", "월,수", "1,2"}})
	after := Fingerprint([][]string{{"김민수", "월,수", "1,3"}})
	assert.NotEqual(t, before, after)
}

func TestIDFromSeed(t *testing.T) {
	id := IDFromSeed("ng:김민수|대치초|초3")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{7}$`), id)
	assert.Equal(t, id, IDFromSeed("ng:김민수|대치초|초3"))
	assert.NotEqual(t, id, IDFromSeed("ng:김민수|대치초|초4"))
}
