package linking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// PromptDecider asks an operator to choose among candidates on a terminal.
// Answers: a candidate number, s to skip, m to enter an event id manually,
// q to save and quit. End of input counts as quit.
type PromptDecider struct {
	in  *bufio.Reader
	out io.Writer

	bold   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	blue   *color.Color
	cyan   *color.Color
	gray   *color.Color
}

// NewPromptDecider reads answers from in and writes prompts to out.
func NewPromptDecider(in io.Reader, out io.Writer, colorize bool) *PromptDecider {
	d := &PromptDecider{
		in:     bufio.NewReader(in),
		out:    out,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		blue:   color.New(color.FgBlue),
		cyan:   color.New(color.FgCyan),
		gray:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{d.bold, d.green, d.yellow, d.red, d.blue, d.cyan, d.gray} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return d
}

// Decide implements Decider.
func (d *PromptDecider) Decide(ctx context.Context, req Request) (Decision, error) {
	record := req.Record
	date := record.Date
	if date == "" {
		date = "Nema datuma"
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.bold.Sprintf("[%d/%d] %s: %s", req.Position, req.Pending, strings.ToUpper(string(record.Type)), record.ID))
	fmt.Fprintf(d.out, "%s %s\n", d.cyan.Sprint("Naslov:"), record.Title)
	fmt.Fprintf(d.out, "%s %s\n\n", d.cyan.Sprint("Datum:"), date)

	fmt.Fprintln(d.out, d.bold.Sprint("Top podudaranja:"))
	for i, candidate := range req.Candidates {
		fmt.Fprintf(d.out, "%s %s - %s (%d)\n",
			d.bold.Sprintf("[%d]", i+1),
			d.scoreColor(candidate.Score).Sprintf("Score: %.0f", candidate.Score),
			candidate.Event.Title,
			candidate.Event.Year)
		fmt.Fprintf(d.out, "    %s\n", d.gray.Sprint(strings.Join(candidate.Reasons, ", ")))
	}

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.gray.Sprint("Akcije:"))
	fmt.Fprintf(d.out, "  %s Prihvati podudaranje\n", d.green.Sprintf("[1-%d]", len(req.Candidates)))
	fmt.Fprintf(d.out, "  %s   Preskoči\n", d.yellow.Sprint("[s]"))
	fmt.Fprintf(d.out, "  %s   Manuelni unos (unesite ID galerije)\n", d.blue.Sprint("[m]"))
	fmt.Fprintf(d.out, "  %s   Sačuvaj i izađi\n", d.red.Sprint("[q]"))

	for {
		answer, err := d.ask(ctx, d.bold.Sprint("Vaš izbor: "))
		if err != nil {
			return d.endOfInput(err)
		}
		switch answer {
		case "q":
			fmt.Fprintln(d.out, d.yellow.Sprint("Čuvanje i izlazak..."))
			return Quit(), nil
		case "s":
			return Skip(), nil
		case "m":
			id, err := d.ask(ctx, d.blue.Sprint("Unesite ID galerije: "))
			if err != nil {
				return d.endOfInput(err)
			}
			if id == "" {
				fmt.Fprintln(d.out, d.red.Sprint("Prazan ID"))
				continue
			}
			return Manual(id), nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(req.Candidates) {
			return Accept(n - 1), nil
		}
		fmt.Fprintln(d.out, d.red.Sprint("Nevažeći izbor"))
	}
}

// Report implements Reporter.
func (d *PromptDecider) Report(ctx context.Context, report Report) {
	switch report.Outcome {
	case OutcomeAlreadyLinked:
		fmt.Fprintln(d.out, d.gray.Sprintf("%s - već povezano", report.Record.ID))
	case OutcomeLinked:
		fmt.Fprintf(d.out, "%s %s -> %s\n", d.green.Sprint("Povezano:"), report.Record.ID, report.Event.Title)
	case OutcomeSkipped:
		fmt.Fprintln(d.out, d.gray.Sprint("Preskočeno"))
	case OutcomeFailed:
		if errors.Is(report.Err, ErrUnknownEvent) {
			fmt.Fprintln(d.out, d.red.Sprintf("Galerija nije pronađena: %v", report.Err))
			return
		}
		fmt.Fprintln(d.out, d.red.Sprintf("Greška: %v", report.Err))
	case OutcomeNoMatches:
		fmt.Fprintln(d.out)
		fmt.Fprintln(d.out, d.bold.Sprintf("%s: %s", strings.ToUpper(string(report.Record.Type)), report.Record.ID))
		fmt.Fprintf(d.out, "%s %s\n", d.cyan.Sprint("Naslov:"), report.Record.Title)
		fmt.Fprintln(d.out, d.yellow.Sprint("Nema pronađenih podudaranja"))
		_, _ = d.ask(ctx, d.gray.Sprint("Pritisnite Enter za nastavak..."))
	}
}

func (d *PromptDecider) scoreColor(score float64) *color.Color {
	switch {
	case score >= 70:
		return d.green
	case score >= 50:
		return d.yellow
	default:
		return d.red
	}
}

func (d *PromptDecider) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(d.out, prompt)
	line, err := d.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (d *PromptDecider) endOfInput(err error) (Decision, error) {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(d.out)
		return Quit(), nil
	}
	return Decision{}, err
}
