package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lixenwraith/pagedots/render"
	"github.com/pterm/pterm"
)

var errQuit = errors.New("quit")

func runREPL(a *app) error {
	repl, err := readline.New("dots > ")
	if err != nil {
		return err
	}
	defer repl.Close()

	pterm.Info.Println("Commands: next, prev, goto N, tap N, rtl on|off, vertical on|off, show, quit")
	pterm.Info.Println("Quit with <ctrl>D")
	show(a)
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		out, err := execute(a, line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if out == "" {
			show(a)
		} else {
			pterm.Println(out)
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func show(a *app) {
	if out, err := execute(a, "show"); err == nil {
		pterm.Println(out)
	}
}

// execute runs one REPL command against a
func execute(a *app, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return "", errQuit
	case "next":
		a.move(1)
	case "prev":
		a.move(-1)
	case "goto":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("goto needs an item number: %w", err)
		}
		a.deck.GoTo(n - 1)
	case "tap":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("tap needs a dot slot: %w", err)
		}
		return "", tapSlot(a, n)
	case "rtl":
		on, err := parseSwitch(arg)
		if err != nil {
			return "", err
		}
		a.setRTL(on)
	case "vertical":
		on, err := parseSwitch(arg)
		if err != nil {
			return "", err
		}
		a.setVertical(on)
	case "show":
		c, err := a.pager.Container()
		if err != nil {
			return "", err
		}
		return render.Text(c) + "\n" + a.status(), nil
	default:
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
	return "", nil
}

// tapSlot taps the dot in slot as a click would
func tapSlot(a *app, slot int) error {
	dots, err := a.pager.Dots()
	if err != nil {
		return err
	}
	for _, d := range dots {
		if d.Index == slot {
			if !d.Tappable || d.Navigator == nil {
				return fmt.Errorf("dot %d is not tappable", slot)
			}
			d.Navigator.SnapToItem(d.Index)
			return nil
		}
	}
	return fmt.Errorf("no dot in slot %d", slot)
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}
