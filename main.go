package main

import (
	"log"

	"github.com/rameshsdv/stock-predictor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("could not start application: %v", err)
	}
}
