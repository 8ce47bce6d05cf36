package main

import (
	"flag"
	"log"

	"github.com/milk9111/clickwalk/assets"
	"github.com/milk9111/clickwalk/placeholders"
)

func main() {
	dir := flag.String("out", assets.DefaultDir, "directory to write placeholder assets into")
	flag.Parse()

	written, err := placeholders.GenerateAndSave(*dir)
	if err != nil {
		log.Fatalf("genassets: %v", err)
	}
	for _, path := range written {
		log.Printf("wrote %s", path)
	}
}
