// Command ggterm-snapshot renders a demo terminal screen to a PNG file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/gogpu/ggterm"
	"github.com/gogpu/ggterm/grid"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("ggterm-snapshot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		config  = fs.String("config", "", "YAML config file")
		cols    = fs.Int("cols", 0, "grid columns (0 keeps the config value)")
		rows    = fs.Int("rows", 0, "grid rows (0 keeps the config value)")
		output  = fs.String("output", "snapshot.png", "output file")
		verbose = fs.Bool("verbose", false, "log frame details to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		ggterm.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer ggterm.SetLogger(nil)
	}

	var opts []grid.Option
	if *config != "" {
		cfg, err := grid.LoadConfig(*config)
		if err != nil {
			return err
		}
		opts = append(opts, grid.WithConfig(cfg))
	}
	if *cols > 0 || *rows > 0 {
		c, r := *cols, *rows
		if c <= 0 {
			c = 80
		}
		if r <= 0 {
			r = 24
		}
		opts = append(opts, grid.WithSize(c, r))
	}

	g, err := grid.New(opts...)
	if err != nil {
		return err
	}
	defer g.Close()

	p := grid.NewImagePresenter()
	b, err := ggterm.New(g, p)
	if err != nil {
		return err
	}

	if err := drawScreen(b); err != nil {
		return err
	}
	if err := b.Flush(); err != nil {
		return err
	}
	if err := p.SavePNG(*output); err != nil {
		return fmt.Errorf("save %s: %w", *output, err)
	}

	ws, _ := b.WindowSize()
	log.Printf("Snapshot saved to %s (%dx%d cells, %dx%d px)\n",
		*output, ws.Cells.Cols, ws.Cells.Rows, ws.Width, ws.Height)
	return nil
}

func drawScreen(b *ggterm.Backend) error {
	size, err := b.Size()
	if err != nil {
		return err
	}
	if err := b.Clear(); err != nil {
		return err
	}

	y := 0
	puts(b, 0, y, "ggterm snapshot", grid.Style{Fg: grid.ColorBrightWhite}.Bold(true))
	y += 2

	// ANSI colours
	for i := range 16 {
		bg := grid.Indexed(uint8(i))
		puts(b, (i%8)*4, y+i/8, fmt.Sprintf("%3d ", i), grid.Style{Fg: grid.ColorBlack, Bg: bg})
	}
	y += 3

	// 256-colour cube and grey ramp
	for i := 16; i < 256; i++ {
		x := (i - 16) % size.Cols
		row := y + (i-16)/size.Cols
		_ = b.SetCell(ggterm.Position{X: x, Y: row}, grid.NewCell(" ", grid.Style{Bg: grid.Indexed(uint8(i))}))
	}
	y += (240+size.Cols-1)/size.Cols + 1

	styles := []struct {
		name  string
		style grid.Style
	}{
		{"bold", grid.Style{}.Bold(true)},
		{"dim", grid.Style{}.Dim(true)},
		{"italic", grid.Style{}.Italic(true)},
		{"underline", grid.Style{}.Underline(true)},
		{"reverse", grid.Style{}.Reverse(true)},
		{"strike", grid.Style{}.Strikethrough(true)},
		{"rgb", grid.Style{Fg: grid.RGB(0xff, 0x9e, 0x64)}},
	}
	x := 0
	for _, s := range styles {
		x += puts(b, x, y, s.name, s.style) + 1
	}
	y += 2

	puts(b, 0, y, "wide: 世界 こんにちは  combining: é ä", grid.Style{Fg: grid.ColorCyan})
	y += 2

	drawBox(b, 0, y, 24, 4)
	puts(b, 2, y+1, "box drawing", grid.Style{Fg: grid.ColorYellow})
	puts(b, 2, y+2, "$ ", grid.Style{Fg: grid.ColorGreen})

	if err := b.SetCursorPosition(ggterm.Position{X: 4, Y: y + 2}); err != nil {
		return err
	}
	return b.ShowCursor()
}

// puts writes s starting at (x, y) and returns the number of cells used.
// Combining runes attach to the preceding rune.
func puts(b *ggterm.Backend, x, y int, s string, style grid.Style) int {
	runes := []rune(s)
	start := x
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		var comb []rune
		for i+1 < len(runes) && runewidth.RuneWidth(runes[i+1]) == 0 {
			comb = append(comb, runes[i+1])
			i++
		}
		_ = b.SetContent(x, y, r, comb, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x - start
}

func drawBox(b *ggterm.Backend, x, y, w, h int) {
	style := grid.Style{Fg: grid.ColorBrightBlue}
	set := func(cx, cy int, r rune) {
		_ = b.SetContent(cx, cy, r, nil, style)
	}
	set(x, y, '┌')
	set(x+w-1, y, '┐')
	set(x, y+h-1, '└')
	set(x+w-1, y+h-1, '┘')
	for i := x + 1; i < x+w-1; i++ {
		set(i, y, '─')
		set(i, y+h-1, '─')
	}
	for j := y + 1; j < y+h-1; j++ {
		set(x, j, '│')
		set(x+w-1, j, '│')
	}
}
