package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typist/internal/view"
)

const wrongSpace = '•'

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isWrong bool
}

func styleFor(ch view.Char, i int, vm view.Model) (rune, lipgloss.Style) {
	switch ch.Class {
	case view.ClassCorrect:
		return ch.Rune, correctStyle
	case view.ClassIncorrect:
		if ch.Rune == ' ' {
			return wrongSpace, incorrectStyle
		}
		return ch.Rune, incorrectStyle
	}
	style := pendingStyle
	if w := vm.CurrentWord; w != nil && ch.Rune != ' ' && i >= w.Start && i < w.End {
		style = currentWordStyle
	}
	if i == vm.Cursor && !vm.InputDisabled {
		style = style.Underline(true)
	}
	return ch.Rune, style
}

func buildStyledRunes(vm view.Model) []styledRune {
	out := make([]styledRune, 0, len(vm.Chars))
	for i, ch := range vm.Chars {
		displayed, style := styleFor(ch, i, vm)
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: ch.Rune == ' ',
			isWrong: ch.Class == view.ClassIncorrect,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that keeps them within width,
// falling back to a hard break for words longer than a line. A mistyped space
// at a break stays visible: it ends the line when it fits, otherwise it starts
// the next one.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if item.isSpace && !item.isWrong {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
				i++
				continue
			}
			if lastSpaceIdx >= 0 {
				end := lastSpaceIdx
				if line[lastSpaceIdx].isWrong {
					end++
				}
				out.WriteString(renderStyledRunes(line[:end]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
