package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderPassRate renders a case-file pass rate like [████░░░░] 4/6.
// Green when every case passed, yellow above half, red otherwise.
func RenderPassRate(passed, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return fmt.Sprintf("[%s] 0/0", StyleDim.Render(strings.Repeat(emptyBlock, width)))
	}
	passed = min(max(passed, 0), total)

	filled := passed * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	switch {
	case passed == total:
		style = StyleGreen
	case passed*2 > total:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), passed, total)
}
