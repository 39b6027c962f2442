// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test plain-text rendering when colors are disabled

package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestAsciiProfileRendersPlain(t *testing.T) {
	prev := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(prev)

	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "[backend]", GroupHeaderStyle.Render("[backend]"))
	assert.Equal(t, "crates/server", PathStyle.Render("crates/server"))
}
