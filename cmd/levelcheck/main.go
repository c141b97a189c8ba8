// levelcheck loads every level in a directory the way the game does and
// reports the ones that cannot be played. Build:
//
//	go build -o levelcheck ./cmd/levelcheck
//
// Usage:
//
//	./levelcheck [-dir levels] [-max 99]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"zombie-dash/internal/level"
)

func main() {
	dir := flag.String("dir", "levels", "Levels directory")
	maxLevel := flag.Int("max", 99, "Highest level number to check")
	flag.Parse()

	problems, err := check(*dir, *maxLevel, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if problems > 0 {
		os.Exit(2)
	}
}

// check walks levels 1..maxLevel until the first missing one, writing a line
// per level to out. It returns how many problems were found.
func check(dir string, maxLevel int, out io.Writer) (int, error) {
	loader, err := level.NewLoader(dir)
	if err != nil {
		return 0, err
	}
	problems := 0
	for n := 1; n <= maxLevel; n++ {
		g, err := loader.Load(n)
		if errors.Is(err, level.ErrNotFound) {
			if n == 1 {
				return 0, fmt.Errorf("no levels in %s", dir)
			}
			break
		}
		if err != nil {
			fmt.Fprintf(out, "level %2d: %v\n", n, err)
			problems++
			continue
		}
		issues := level.Lint(g)
		if len(issues) == 0 {
			fmt.Fprintf(out, "level %2d: ok  %s (%d citizens, %d zombies)\n", n, g.Name,
				g.Count(level.Citizen), g.Count(level.DumbZombie)+g.Count(level.SmartZombie))
			continue
		}
		for _, p := range issues {
			fmt.Fprintf(out, "level %2d: %s: %s\n", n, g.Name, p)
		}
		problems += len(issues)
	}
	return problems, nil
}
