package core

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// SnippetFileName derives the deterministic file name for a snippet from a
// digest of its import lines and body, so identical snippets reuse the same
// file across runs.
func SnippetFileName(imports []string, code string) string {
	sum := sha1.Sum([]byte(strings.Join(imports, "\n") + "\n" + code))
	return fmt.Sprintf("run_%s.lean", hex.EncodeToString(sum[:])[:12])
}

// RenderSnippet produces the snippet file contents: one import line per
// entry, a blank separator line, then the trimmed code body.
func RenderSnippet(imports []string, code string) string {
	var b strings.Builder
	for _, imp := range imports {
		fmt.Fprintf(&b, "import %s\n", imp)
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(code))
	b.WriteString("\n")
	return b.String()
}
