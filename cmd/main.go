package main

import (
	"fmt"
	"log"

	"github.com/abiiranathan/manifesticons"
)

func main() {
	// Regenerate the manifest icons from icons/icon-512x512.png.
	if err := manifesticons.Generate(manifesticons.DefaultDir); err != nil {
		log.Fatal(err)
	}
	fmt.Println(manifesticons.SuccessMessage)
}
