package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardset/playingcard"
	"github.com/arcanaland/cardset/tarot"
)

var (
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.FgHiWhite)
	redSuit    = color.New(color.FgRed, color.Bold)
	blackSuit  = color.New(color.FgHiWhite, color.Bold)
	jokerColor = color.New(color.FgMagenta, color.Bold)
)

// terminalWidth returns the width of stdout, or 80 when it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// colorCard renders a playing card in its suit color.
func colorCard(c *playingcard.PlayingCard) string {
	switch {
	case c.Suit() == playingcard.None:
		return jokerColor.Sprint(c.String())
	case c.Suit().IsRed():
		return redSuit.Sprint(c.String())
	default:
		return blackSuit.Sprint(c.String())
	}
}

// cardLines lays out cards separated by spaces, wrapping to width.
func cardLines(cards []*playingcard.PlayingCard, width int) []string {
	if width < 10 {
		width = 40
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, c := range cards {
		s := colorCard(c)
		w := visibleWidth(s)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(s)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func printCards(w io.Writer, cards []*playingcard.PlayingCard) {
	for _, line := range cardLines(cards, terminalWidth()-2) {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	currentLine := words[0]
	for _, word := range words[1:] {
		if visibleWidth(currentLine)+1+visibleWidth(word) <= width {
			currentLine += " " + word
			continue
		}
		result = append(result, currentLine)
		currentLine = word
	}
	return append(result, currentLine)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\033':
			inEscape = true
		default:
			result.WriteRune(c)
		}
	}
	return result.String()
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// displayTarotCard prints ANSI art on the left and card details on the right.
// art may be empty.
func displayTarotCard(w io.Writer, c *tarot.Card, art, deckName string) {
	var artLines []string
	if art != "" {
		artLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
	}
	maxArtWidth := 0
	for _, line := range artLines {
		maxArtWidth = max(maxArtWidth, visibleWidth(line))
	}

	info := []string{
		labelColor.Sprint("Card: ") + valueColor.Sprint(c.Name),
		labelColor.Sprint("Deck: ") + valueColor.Sprint(deckName),
		labelColor.Sprint("ID:   ") + valueColor.Sprint(c.CanonicalID),
	}
	if c.Arcana == tarot.MajorArcana {
		info = append(info, labelColor.Sprint("Type: ")+valueColor.Sprint("Major Arcana"))
	} else {
		info = append(info,
			labelColor.Sprint("Type: ")+valueColor.Sprint("Minor Arcana"),
			labelColor.Sprint("Suit: ")+valueColor.Sprint(c.Suit),
			labelColor.Sprint("Rank: ")+valueColor.Sprint(c.Rank),
		)
	}

	spacing := 0
	if maxArtWidth > 0 {
		spacing = 4
	}
	infoStartCol := maxArtWidth + spacing
	infoWidth := max(terminalWidth()-infoStartCol-2, 20)

	if c.AltText != "" {
		info = append(info, "", labelColor.Sprint("Description:"))
		info = append(info, wrapText(c.AltText, infoWidth)...)
	}

	fmt.Fprintln(w)
	for i := range max(len(artLines), len(info)) {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i], "\x1b[0m")
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			fmt.Fprint(w, info[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
