package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// prompter collects dialog drafts line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints a labeled prompt and returns the typed value. A blank answer
// keeps the current one, so editing only touches the fields the user changes.
func (p *prompter) ask(label, current string) string {
	if current != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		return current
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer
	}
	return current
}

// askInt keeps the current value on a blank or unparseable answer.
func (p *prompter) askInt(label string, current int) int {
	n, err := strconv.Atoi(p.ask(label, strconv.Itoa(current)))
	if err != nil {
		return current
	}
	return n
}

// askDate reads a yyyy-mm-dd date, keeping the current value otherwise.
func (p *prompter) askDate(label string, current time.Time) time.Time {
	shown := ""
	if !current.IsZero() {
		shown = current.Format("2006-01-02")
	}
	answer := p.ask(label, shown)
	parsed, err := time.Parse("2006-01-02", answer)
	if err != nil {
		return current
	}
	return parsed
}
