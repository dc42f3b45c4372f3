// memescript — Meme caption generation.
//
// Usage:
//
//	memescript -o <file> -i <image> [--top <text>] [--bottom <text>] [options]
//	memescript -o <file> --random --random-text [--phrases <path>]
//	memescript -o <file> --color <hex> [-w <px>] [-h <px>] [options]
//	memescript serve [--port 8080]
//	memescript phrase [--phrases <path>]
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"github.com/AlejandroGlezSan/memescript/clients/server"
	"github.com/AlejandroGlezSan/memescript/pkg/caption"
	"github.com/AlejandroGlezSan/memescript/pkg/generator"
	"github.com/AlejandroGlezSan/memescript/pkg/imgflip"
	"github.com/AlejandroGlezSan/memescript/pkg/phrases"
)

// fetchTimeout bounds the whole template download in --random mode.
const fetchTimeout = 30 * time.Second

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := server.RunServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "phrase":
		if err := runPhrase(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := run(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("memescript", flag.ExitOnError)

	var (
		output      string
		input       string
		random      bool
		top         string
		bottom      string
		randomText  bool
		phrasesPath string
		fontPath    string
		fontSize    int
		colorHex    string
		width       int
		height      int
	)

	fs.StringVar(&output, "o", "", "Output file path (.png, .jpg, or .bmp)")
	fs.StringVar(&output, "output", "", "Output file path (.png, .jpg, or .bmp)")
	fs.StringVar(&input, "i", "", "Input image path")
	fs.StringVar(&input, "input", "", "Input image path")
	fs.BoolVar(&random, "random", false, "Fetch a random Imgflip template as the background")
	fs.StringVar(&top, "top", "", "Top caption text")
	fs.StringVar(&bottom, "bottom", "", "Bottom caption text")
	fs.BoolVar(&randomText, "random-text", false, "Fill empty captions from the phrase pool")
	fs.StringVar(&phrasesPath, "phrases", "", "Path to phrase pool JSON")
	fs.StringVar(&fontPath, "font", "", "Path to a TTF/OTF font")
	fs.IntVar(&fontSize, "font-size", 0, "Starting font size in pixels (0 = auto)")
	fs.StringVar(&colorHex, "color", "", "Solid background color: hex or 'random'")
	fs.IntVar(&width, "w", 800, "Solid background width in pixels")
	fs.IntVar(&width, "width", 800, "Solid background width in pixels")
	fs.IntVar(&height, "h", 600, "Solid background height in pixels")
	fs.IntVar(&height, "height", 600, "Solid background height in pixels")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}

	background, err := loadBackground(input, random, colorHex, width, height)
	if err != nil {
		return err
	}

	if randomText {
		pool, warnings, err := phrases.Load(phrasesPath)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		if top == "" {
			top = pool.Random()
		}
		if bottom == "" {
			bottom = pool.Random()
		}
	}

	img, err := caption.Render(background, top, bottom, caption.Options{
		FontPath: fontPath,
		FontSize: fontSize,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := generator.Generate(output, generator.Config{Image: img}); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

// loadBackground resolves the background image: an input file, a random
// Imgflip template, or a solid canvas, in that priority order.
func loadBackground(input string, random bool, colorHex string, width, height int) (image.Image, error) {
	switch {
	case input != "":
		img, err := imaging.Open(input, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", input, err)
		}
		return img, nil

	case random:
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		img, err := imgflip.NewClient().RandomImage(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch template: %w", err)
		}
		return img, nil

	default:
		c, err := generator.ParseColor(colorHex)
		if err != nil {
			return nil, err
		}
		return generator.NewSolidImage(width, height, c), nil
	}
}

func runPhrase(args []string) error {
	fs := flag.NewFlagSet("phrase", flag.ExitOnError)
	var phrasesPath string
	fs.StringVar(&phrasesPath, "phrases", "", "Path to phrase pool JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pool, warnings, err := phrases.Load(phrasesPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	fmt.Println(pool.Random())
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`memescript — Meme Caption Generation (Pure Go)

USAGE:
    memescript -o <file> -i <image> [--top <text>] [--bottom <text>] [options]
    memescript -o <file> --random [--random-text]
    memescript -o <file> --color <hex> [-w <px>] [-h <px>] [options]
    memescript serve [--port 8080]
    memescript phrase [--phrases <path>]

BACKGROUND:
    -i, --input <path>     Input image (png/jpg/gif/bmp/webp)
    --random               Fetch a random Imgflip template
    --color <hex>          Solid background color or 'random'
    -w, --width <px>       Solid background width (default: 800)
    -h, --height <px>      Solid background height (default: 600)

CAPTIONS:
    --top <text>           Top caption
    --bottom <text>        Bottom caption
    --random-text          Fill empty captions from the phrase pool
    --phrases <path>       Phrase pool JSON (array of strings)

STYLE:
    --font <path>          Custom TTF/OTF font
    --font-size <px>       Starting font size (0 = derived from image height)

OUTPUT:
    -o, --output <path>    Output file (.png, .jpg, or .bmp)

UI SERVER:
    memescript serve [--port 8080] [--phrases <path>]

EXAMPLES:
    memescript -o meme.png -i cat.jpg --top "ONE DOES NOT SIMPLY" --bottom "SHIP ON FRIDAY"
    memescript -o meme.png --random --random-text --phrases phrases.json
    memescript -o card.jpg --color "#202040" -w 1280 -h 720 --top "HELLO"
    memescript serve --port 8080
`)
}
