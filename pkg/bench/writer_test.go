package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeclaredInputNamesPreservesDeclarationOrder(t *testing.T) {
	// ISCAS benchmarks name nets numerically; declaration order and
	// alphabetical order disagree past single digits (e.g. "4" sorts
	// before "11" numerically but after it alphabetically), so this
	// must come back in the order the nets were declared, not sorted.
	path := writeBench(t, `
INPUT(11)
INPUT(4)
INPUT(8)
OUTPUT(out)
out = AND(11, 4, 8)
`)
	c, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, []string{"11", "4", "8"}, DeclaredInputNames(c))
}
