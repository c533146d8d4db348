package slugs

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptySource is returned when a sluggable entity has no usable source
// text (missing name or title). The surrounding insert/update must abort.
var ErrEmptySource = errors.New("slug source text is empty")

// ExistsFunc answers whether a candidate slug is already taken for the
// entity kind being slugged. Supplied by the persistence layer.
type ExistsFunc func(candidate string) (bool, error)

const (
	suffixLength = 10
	suffixDigits = "0123456789"
	suffixUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Coordinator generates unique slugs. Randomness is injected so tests can
// pin the suffix sequence; it does not need to be cryptographically secure,
// its only job is collision avoidance.
type Coordinator struct {
	rnd *rand.Rand
}

// NewCoordinator builds a Coordinator around src. A nil src falls back to a
// time-seeded source.
func NewCoordinator(src rand.Source) *Coordinator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Coordinator{rnd: rand.New(src)}
}

// suffix is one digit followed by nine uppercase letters.
func (c *Coordinator) suffix() string {
	b := make([]byte, suffixLength)
	b[0] = suffixDigits[c.rnd.Intn(len(suffixDigits))]
	for i := 1; i < suffixLength; i++ {
		b[i] = suffixUpper[c.rnd.Intn(len(suffixUpper))]
	}
	return string(b)
}

// UniqueSlug slugifies source and, for person-name slugs, appends a random
// suffix. On a suffix collision it regenerates exactly once; there is no
// retry loop. Title slugs are returned as-is with no collision check —
// the unique index on the table is the backstop.
func (c *Coordinator) UniqueSlug(source string, withSuffix bool, exists ExistsFunc) (string, error) {
	base := Slugify(source)
	if base == "" {
		return "", ErrEmptySource
	}
	if !withSuffix {
		return base, nil
	}

	candidate := base + "-" + c.suffix()
	taken, err := exists(candidate)
	if err != nil {
		return "", err
	}
	if taken {
		candidate = base + "-" + c.suffix()
		// The regenerated candidate is checked but returned either way; a
		// second collision is left to the table's unique index.
		if _, err := exists(candidate); err != nil {
			return "", err
		}
	}
	return candidate, nil
}

// IsSuffixed reports whether slug is base plus a well-formed random suffix.
func IsSuffixed(base, slug string) bool {
	if len(slug) != len(base)+1+suffixLength {
		return false
	}
	if slug[:len(base)] != base || slug[len(base)] != '-' {
		return false
	}
	suffix := slug[len(base)+1:]
	if suffix[0] < '0' || suffix[0] > '9' {
		return false
	}
	for i := 1; i < len(suffix); i++ {
		if suffix[i] < 'A' || suffix[i] > 'Z' {
			return false
		}
	}
	return true
}
