// Package credential generates the token and password handed to the
// provisioning script.
package credential

// TokenLength is the number of letters in a generated token.
const TokenLength = 10

const (
	tokenFirst = 'A'
	tokenLast  = 'Z'
)

// GenerateToken returns TokenLength uppercase ASCII letters, each drawn
// independently from src. Repeated letters are expected.
func GenerateToken(src Source) string {
	b := make([]byte, TokenLength)
	for i := range b {
		b[i] = byte(tokenFirst + src.IntN(tokenLast-tokenFirst+1))
	}
	return string(b)
}
