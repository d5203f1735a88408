package main

import (
	"bufio"
	"fmt"
	"os"

	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/homemade"
	"github.com/eloworld/strategies/internal/uci"
	"github.com/pkg/profile"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("data/CmdUciMain"))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	name := "random"
	if len(args) > 0 {
		name = args[0]
	}

	// stdout is the UCI wire, so everything else goes to stderr
	stderrLogger := FuncLogger(func(line string) {
		fmt.Fprint(os.Stderr, line)
	})

	options := []homemade.Option{homemade.WithLogger(stderrLogger)}
	if path := os.Getenv("STOCKFISH_PATH"); path != "" {
		options = append(options, homemade.WithOraclePath(path))
	}

	s, err := homemade.New(name, options...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: uci [strategy] — one of", homemade.Names())
		os.Exit(1)
	}
	if err := s.Initialize(); !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = s.Shutdown()
	}()

	r := uci.NewUciRunner(s, uci.WithLogger(stderrLogger))

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		input := scanner.Text()
		if input == "quit" {
			break
		}
		outputs, err := r.HandleInput(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		for _, output := range outputs {
			fmt.Println(output)
		}
	}
}
