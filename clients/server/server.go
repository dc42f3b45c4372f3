// Package server provides the memescript HTTP API.
//
// Two rendering endpoints are exposed: POST /api/render captions an
// uploaded image, GET /api/random captions a random Imgflip template with
// caption text from the query or the configured phrase pool. Rendering
// policy (which slots to fill) stays with the caller; the server only
// forwards whatever non-empty captions it was given.
package server

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/AlejandroGlezSan/memescript/pkg/caption"
	"github.com/AlejandroGlezSan/memescript/pkg/generator"
	"github.com/AlejandroGlezSan/memescript/pkg/imgflip"
	"github.com/AlejandroGlezSan/memescript/pkg/phrases"
)

// maxUploadBytes bounds POST /api/render request bodies.
const maxUploadBytes = 32 << 20

type server struct {
	pool *phrases.Pool
	flip *imgflip.Client
}

// RunServe parses serve-mode flags and runs the HTTP API until the process
// is terminated.
func RunServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port        int
		phrasesPath string
	)
	fs.IntVar(&port, "port", 8080, "Port to listen on")
	fs.StringVar(&phrasesPath, "phrases", "", "Path to phrase pool JSON (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pool, warnings, err := phrases.Load(phrasesPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("Warning: %s", w)
	}

	s := &server{pool: pool, flip: imgflip.NewClient()}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/render", s.handleRender)
	mux.HandleFunc("GET /api/random", s.handleRandom)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("memescript API listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleRender captions an uploaded image. Multipart fields: "image" (the
// file), "top", "bottom", and optional overrides "font_size", "text_fill",
// "stroke_fill" (hex). Responds with PNG.
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpError(w, http.StatusBadRequest, "parse form: %v", err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		httpError(w, http.StatusBadRequest, "missing image file: %v", err)
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		httpError(w, http.StatusBadRequest, "decode image: %v", err)
		return
	}

	opts := caption.Options{FontSize: atoiOrZero(r.FormValue("font_size"))}
	if hex := r.FormValue("text_fill"); hex != "" {
		opts.TextFill = generator.ParseHexRGBA(hex)
	}
	if hex := r.FormValue("stroke_fill"); hex != "" {
		opts.StrokeFill = generator.ParseHexRGBA(hex)
	}

	s.respondRendered(w, r, img, r.FormValue("top"), r.FormValue("bottom"), opts)
}

// handleRandom captions a random Imgflip template. Query params "top" and
// "bottom" override the phrase pool; with both absent each slot gets a
// random phrase.
func (s *server) handleRandom(w http.ResponseWriter, r *http.Request) {
	top := r.URL.Query().Get("top")
	bottom := r.URL.Query().Get("bottom")
	if top == "" && bottom == "" {
		top = s.pool.Random()
		bottom = s.pool.Random()
	}

	img, err := s.flip.RandomImage(r.Context())
	if errors.Is(err, imgflip.ErrNoTemplates) {
		httpError(w, http.StatusNotFound, "no templates available")
		return
	}
	if err != nil {
		httpError(w, http.StatusBadGateway, "fetch template: %v", err)
		return
	}

	s.respondRendered(w, r, img, top, bottom, caption.Options{})
}

// respondRendered runs the layout engine and streams the result as PNG.
func (s *server) respondRendered(w http.ResponseWriter, r *http.Request, img image.Image, top, bottom string, opts caption.Options) {
	out, err := caption.Render(img, top, bottom, opts)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "render: %v", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := generator.GenerateToWriter(w, ".png", generator.Config{Image: out}); err != nil {
		// Headers are gone at this point; just log.
		log.Printf("write response for %s: %v", r.URL.Path, err)
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	log.Printf("HTTP %d: %s", code, fmt.Sprintf(format, args...))
	http.Error(w, fmt.Sprintf(format, args...), code)
}
