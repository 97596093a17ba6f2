package main

import (
	"log"

	"github.com/surajmeruva0786/DigiGov10/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
