// Package markdown renders todo descriptions for the terminal.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Style selects the glamour style set.
type Style int

const (
	// StylePlain renders without color, for pipes and NO_COLOR.
	StylePlain Style = iota
	// StyleLight targets light terminal backgrounds.
	StyleLight
	// StyleDark targets dark terminal backgrounds.
	StyleDark
)

// StyleFor picks a style from the display settings.
func StyleFor(plain, dark bool) Style {
	switch {
	case plain:
		return StylePlain
	case dark:
		return StyleDark
	default:
		return StyleLight
	}
}

type renderer interface {
	Render(string) (string, error)
}

type rendererKey struct {
	width int
	style Style
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]renderer{}
)

// Render formats markdown text for terminal output in the plain style.
func Render(width, indentWidth int, input []byte) []byte {
	return RenderStyled(width, indentWidth, StylePlain, input)
}

// RenderStyled formats markdown text for terminal output. Output is wrapped
// to width and indented by indentWidth spaces. Empty input renders as nil.
func RenderStyled(width, indentWidth int, style Style, input []byte) []byte {
	out, err := render(width, indentWidth, style, input)
	if err != nil {
		return fallback(width, indentWidth, input)
	}
	return out
}

// SafeRender is RenderStyled that also survives a renderer panic, falling
// back to the wrapped source text.
func SafeRender(width, indentWidth int, style Style, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			out = fallback(width, indentWidth, input)
		}
	}()
	return RenderStyled(width, indentWidth, style, input)
}

func render(width, indentWidth int, style Style, input []byte) ([]byte, error) {
	value, ok := normalize(input)
	if !ok {
		return nil, nil
	}
	renderWidth, indentWidth := clampWidths(width, indentWidth)

	r, err := markdownRenderer(renderWidth, style)
	if err != nil {
		return nil, err
	}
	formatted, err := r.Render(value)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	formatted = internalstrings.TrimTrailingNewlines(formatted)
	if strings.TrimSpace(formatted) == "" {
		return nil, nil
	}
	return []byte(indentBlock(formatted, indentWidth)), nil
}

func fallback(width, indentWidth int, input []byte) []byte {
	value, ok := normalize(input)
	if !ok {
		return nil
	}
	renderWidth, indentWidth := clampWidths(width, indentWidth)
	return []byte(indentBlock(wordwrap.String(value, renderWidth), indentWidth))
}

func normalize(input []byte) (string, bool) {
	if len(input) == 0 {
		return "", false
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func clampWidths(width, indentWidth int) (int, int) {
	if width < 1 {
		width = 1
	}
	if indentWidth < 0 {
		indentWidth = 0
	}
	renderWidth := width - indentWidth
	if renderWidth < 1 {
		renderWidth = 1
	}
	return renderWidth, indentWidth
}

func styleConfig(style Style) ansi.StyleConfig {
	switch style {
	case StyleDark:
		return styles.DarkStyleConfig
	case StyleLight:
		return styles.LightStyleConfig
	default:
		config := styles.ASCIIStyleConfig
		config.Item.BlockPrefix = "- "
		config.ImageText.Format = "Image: {{.text}} ->"
		return config
	}
}

func markdownRenderer(width int, style Style) (renderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	key := rendererKey{width: width, style: style}
	if cached, ok := renderers[key]; ok {
		return cached, nil
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	renderers[key] = created
	return created, nil
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	return indent.String(value, uint(spaces))
}
