package credential

import (
	"errors"
	"fmt"
	"strings"
)

// PasswordLength is the number of characters in a generated password.
const PasswordLength = 10

// ErrPoolTooSmall is returned when the character pool has fewer entries than
// the index policy needs.
var ErrPoolTooSmall = errors.New("character pool too small")

// IndexPolicy selects how password positions index into the character pool.
type IndexPolicy int

const (
	// PolicyUniform draws each index from [0, len(pool)-1].
	PolicyUniform IndexPolicy = iota
	// PolicyLegacy draws each index from [0, PasswordLength] whatever the pool
	// length, so only the first PasswordLength+1 entries are ever used.
	PolicyLegacy
)

func (p IndexPolicy) String() string {
	switch p {
	case PolicyUniform:
		return "uniform"
	case PolicyLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("IndexPolicy(%d)", int(p))
	}
}

// ParseIndexPolicy maps "uniform" or "legacy" (case-insensitive) to a policy.
func ParseIndexPolicy(s string) (IndexPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform":
		return PolicyUniform, nil
	case "legacy":
		return PolicyLegacy, nil
	default:
		return 0, fmt.Errorf("unknown index policy %q (want uniform or legacy)", s)
	}
}

// MinPoolSize returns the smallest pool the policy can sample from.
func (p IndexPolicy) MinPoolSize() int {
	if p == PolicyLegacy {
		return PasswordLength + 1
	}
	return 1
}

func (p IndexPolicy) span(poolLen int) int {
	if p == PolicyLegacy {
		return PasswordLength + 1
	}
	return poolLen
}

// GeneratePassword returns PasswordLength characters taken from pool at
// indices drawn from src. The pool is used as-is: duplicates weigh the draw.
func GeneratePassword(src Source, pool []rune, policy IndexPolicy) (string, error) {
	if policy != PolicyUniform && policy != PolicyLegacy {
		return "", fmt.Errorf("unknown index policy %v", policy)
	}
	if minSize := policy.MinPoolSize(); len(pool) < minSize {
		return "", fmt.Errorf("%w: have %d characters, %s policy needs at least %d",
			ErrPoolTooSmall, len(pool), policy, minSize)
	}

	span := policy.span(len(pool))
	out := make([]rune, PasswordLength)
	for i := range out {
		out[i] = pool[src.IntN(span)]
	}
	return string(out), nil
}
