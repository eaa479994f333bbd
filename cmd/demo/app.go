package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/delaneyj/minisignals/cmd/demo/views"
	"github.com/delaneyj/minisignals/mini"
)

var errQuit = errors.New("quit")

// app is the counter, order total and name binding from the browser demo,
// with a terminal in place of the DOM.
type app struct {
	rs       *mini.ReactiveSystem
	counter  *mini.WriteableSignal[int]
	price    *mini.WriteableSignal[int]
	quantity *mini.WriteableSignal[int]
	total    *mini.ReadonlySignal[int]
	name     *mini.WriteableSignal[string]
}

func newApp(rs *mini.ReactiveSystem, price, quantity int) (*app, error) {
	a := &app{
		rs:       rs,
		counter:  mini.Signal(rs, 0),
		price:    mini.Signal(rs, price),
		quantity: mini.Signal(rs, quantity),
		name:     mini.Signal(rs, ""),
	}

	total, err := mini.Computed(rs, func() (int, error) {
		return a.price.Value() * a.quantity.Value(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error while creating total: %w", err)
	}
	a.total = total
	return a, nil
}

// render binds one effect per view; each writes a line to w whenever the
// values it reads change.
func (a *app) render(w io.Writer) error {
	if err := mini.Effect(a.rs, func() error {
		views.WriteCounter(w, a.counter.Value())
		_, err := io.WriteString(w, "\n")
		return err
	}); err != nil {
		return err
	}

	if err := mini.Effect(a.rs, func() error {
		// price and quantity are only for display, the effect follows total
		price, quantity := a.price.Peek(), a.quantity.Peek()
		views.WriteTotal(w, price, quantity, a.total.Value())
		_, err := io.WriteString(w, "\n")
		return err
	}); err != nil {
		return err
	}

	return mini.Effect(a.rs, func() error {
		views.WriteDisplayName(w, a.name.Value())
		_, err := io.WriteString(w, "\n")
		return err
	})
}

// handle applies one input line such as "inc", "qty 5", "price 3" or
// "name Ada".
func (a *app) handle(line string) error {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch verb {
	case "":
		return nil
	case "inc":
		log.Print("Incrementing counter...")
		return a.counter.Update(func(v int) int { return v + 1 })
	case "qty":
		return a.quantity.SetValue(parseIntOrZero(arg))
	case "price":
		return a.price.SetValue(parseIntOrZero(arg))
	case "name":
		return a.name.SetValue(arg)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
}

// run feeds every line of r to handle until r is exhausted or quit is read.
// Unknown commands are logged and skipped.
func (a *app) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := a.handle(scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			log.Printf("error handling %q: %v", scanner.Text(), err)
		}
	}
	return scanner.Err()
}

// parseIntOrZero mirrors the browser's parseInt(value, 10) || 0.
func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
