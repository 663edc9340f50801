package menu

import (
	"fmt"
	"io"
	"strconv"
)

const prompt = "Choose an option:\n" +
	" 1-Lasagna\n" +
	" 2-Annalyn's Infiltration\n" +
	"\n" +
	"option: "

// Line is one labelled output value.
type Line struct {
	Label string
	Value string
}

// Title returns the heading printed above a report, empty on quit.
func (r Report) Title() string {
	switch {
	case r.Cooking != nil:
		return "Lasagna"
	case len(r.Rules) > 0:
		return "Annalyn's Infiltration"
	default:
		return ""
	}
}

// Lines returns the labelled values of the report in print order.
func (r Report) Lines() []Line {
	var lines []Line
	if c := r.Cooking; c != nil {
		remaining := strconv.Itoa(c.Remaining)
		if c.Overrun {
			remaining += " (overrun)"
		}
		lines = append(lines,
			Line{"Time", remaining},
			Line{"preparationTime", strconv.Itoa(c.Preparation)},
			Line{"total time", strconv.Itoa(c.Total)},
		)
	}
	for _, rr := range r.Rules {
		lines = append(lines, Line{rr.Rule.String(), strconv.FormatBool(rr.Outcome)})
	}
	return lines
}

// RenderPrompt writes the selection prompt.
func RenderPrompt(w io.Writer) error {
	_, err := io.WriteString(w, prompt)
	return err
}

// Render writes the report title and lines followed by a blank separator
// line. A quit report renders as the separator alone.
func Render(w io.Writer, r Report) error {
	if title := r.Title(); title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for _, l := range r.Lines() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.Label, l.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
