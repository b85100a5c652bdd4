package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/output"
	"github.com/df07/go-smallpt/pkg/renderer"
)

// CompleteUpdate is the final SSE event of a render
type CompleteUpdate struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// renderResult is handed from the render goroutine to the SSE writer
type renderResult struct {
	fb    *renderer.Framebuffer
	stats renderer.RenderStats
	err   error
}

// newRaytracer builds the requested scene and a raytracer for it. Errors are
// caused by the request: an unknown scene or an invalid configuration.
func (s *Server) newRaytracer(req *RenderRequest, logger core.Logger) (*renderer.Raytracer, error) {
	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		return nil, err
	}

	config := &sceneObj.SamplingConfig
	config.Width = req.Width
	config.Height = req.Height
	config.SamplesPerPixel = req.SamplesPerPixel
	if req.Seed != 0 {
		config.Seed = req.Seed
	}

	return renderer.NewRaytracer(sceneObj, integrator.NewPathTracingIntegrator(*config), req.Workers, logger)
}

// handleImage renders synchronously and responds with the encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	raytracer, err := s.newRaytracer(req, NewWebLogger(renderID(), nil))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fb, stats, err := raytracer.Render(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Render failed: %v", err), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = output.WritePPM(&buf, fb)
	} else {
		err = output.WritePNG(&buf, fb)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Render-Duration-Ms", fmt.Sprint(stats.Duration.Milliseconds()))
	w.Write(buf.Bytes())
}

// handleRender renders in the background and streams console output, then the
// finished image, as Server-Sent Events
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	ctx := r.Context()
	consoleChan := make(chan ConsoleMessage, 50)
	done := make(chan renderResult, 1)

	raytracer, err := s.newRaytracer(req, NewWebLogger(renderID(), consoleChan))
	if err != nil {
		s.sendSSEEvent(w, "error", err.Error())
		return
	}

	go func() {
		fb, stats, err := raytracer.Render(ctx)
		done <- renderResult{fb: fb, stats: stats, err: err}
	}()

	// This goroutine is the only writer of the response
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsole(w, msg)
		case result := <-done:
			s.drainConsole(w, consoleChan)
			if result.err != nil {
				s.sendSSEEvent(w, "error", result.err.Error())
				return
			}
			s.sendComplete(w, result)
			return
		case <-ctx.Done():
			// Client disconnected; the render stops at the next row
			return
		}
	}
}

// drainConsole forwards console messages still queued when the render finished
func (s *Server) drainConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsole(w, msg)
		default:
			return
		}
	}
}

func (s *Server) sendConsole(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error encoding console message: %v", err)
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

func (s *Server) sendComplete(w http.ResponseWriter, result renderResult) {
	var buf bytes.Buffer
	if err := output.WritePNG(&buf, result.fb); err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(CompleteUpdate{
		Width:     result.fb.Width,
		Height:    result.fb.Height,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats:     toStats(result.stats),
	})
	if err != nil {
		s.sendSSEEvent(w, "error", err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// toStats converts renderer statistics to their JSON form
func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples(),
		Rows:           stats.Rows,
		Workers:        stats.NumWorkers,
		DurationMs:     stats.Duration.Milliseconds(),
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

func renderID() string {
	return fmt.Sprintf("render-%d", time.Now().UnixNano())
}
