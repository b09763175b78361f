package drives

import (
	"strings"
)

// LetterCount is the number of drive letters, A through Z.
const LetterCount = 26

// Letter is a drive letter in its colon form, e.g. "Z:".
type Letter string

// ParseLetter accepts a two character "<letter>:" token, case-insensitively.
func ParseLetter(token string) (Letter, bool) {
	if len(token) != 2 || token[1] != ':' {
		return "", false
	}
	c := token[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return "", false
	}
	return Letter(string(c) + ":"), true
}

// index returns 0 for A: through 25 for Z:
func (l Letter) index() int {
	return int(l[0] - 'A')
}

// Join appends a path remainder to the letter ("V:" + `\docs` = `V:\docs`).
func (l Letter) Join(remainder string) string {
	return string(l) + remainder
}

// LetterSet is the bitmask of letters in use. Bit 0 is A:, bit 25 is Z:.
type LetterSet uint32

// Has reports whether l is marked in use
func (s LetterSet) Has(l Letter) bool {
	return s&(1<<uint(l.index())) != 0
}

// With returns the set with l marked in use
func (s LetterSet) With(l Letter) LetterSet {
	return s | 1<<uint(l.index())
}

// Letters returns the letters marked in use, A to Z
func (s LetterSet) Letters() []Letter {
	var used []Letter
	for i := 0; i < LetterCount; i++ {
		if s&(1<<uint(i)) != 0 {
			used = append(used, letterAt(i))
		}
	}
	return used
}

func (s LetterSet) String() string {
	var b strings.Builder
	for _, l := range s.Letters() {
		b.WriteByte(l[0])
	}
	return b.String()
}

func letterAt(i int) Letter {
	return Letter(string(rune('A'+i)) + ":")
}

// FreeLetters returns every letter not in used, Z first.
func FreeLetters(used LetterSet) []Letter {
	free := make([]Letter, 0, LetterCount)
	for i := LetterCount - 1; i >= 0; i-- {
		if l := letterAt(i); !used.Has(l) {
			free = append(free, l)
		}
	}
	return free
}

// MaskSource reports which drive letters are currently in use
type MaskSource interface {
	UsedLetters() (LetterSet, error)
}
