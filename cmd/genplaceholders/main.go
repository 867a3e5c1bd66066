package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/candlewake/internal/assets"
)

func main() {
	dir := flag.String("out", assets.DefaultDir, "directory to write the sprite sheets to")
	flag.Parse()

	fmt.Println("Candlewake Placeholder Sprite Generator")
	fmt.Println("=======================================")
	fmt.Println()

	written, err := assets.SavePlaceholders(*dir)
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Edit the sheets and run the game to see them in action.")
}
