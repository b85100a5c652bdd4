package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-smallpt/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of .json scene files")
	flag.Parse()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("smallpt Web Server")
	log.Printf("Try http://localhost:%d/api/image?scene=cornell&spp=16", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
