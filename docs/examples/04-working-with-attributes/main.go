package main

import (
	"fmt"
	"log"

	"github.com/encharts/s57decode/pkg/s57"
)

func printFeatureDetails(feature s57.Feature) {
	fmt.Printf("Feature: %s (OBJL %d)\n", feature.ObjectClass(), feature.OBJL())

	attrs := feature.Attributes()

	// Object name (if present)
	if name, ok := attrs["OBJNAM"].(string); ok {
		fmt.Printf("  Name: %s\n", name)
	}

	// Depth value for depth contours
	if feature.ObjectClass() == "DEPCNT" {
		if depth, ok := attrs["VALDCO"].(string); ok {
			fmt.Printf("  Depth: %s meters\n", depth)
		}
	}

	// Light characteristics; COLOUR is normalized to a single int code
	if feature.ObjectClass() == "LIGHTS" {
		if colour, ok := attrs["COLOUR"].(int); ok {
			fmt.Printf("  Colour code: %d\n", colour)
		}
		if height, ok := attrs["HEIGHT"].(string); ok {
			fmt.Printf("  Height: %s meters\n", height)
		}
	}

	// Sounding depth; exploded SOUNDG features carry their own DEPTH
	if feature.ObjectClass() == "SOUNDG" {
		if depth, ok := attrs["DEPTH"].(float64); ok {
			fmt.Printf("  Sounding depth: %.1f meters\n", depth)
		}
	}
}

func main() {
	parser := s57.NewParser()
	chart, err := parser.Parse("US5MA22M.000")
	if err != nil {
		log.Fatal(err)
	}

	// Print details for first few features
	count := 0
	for _, f := range chart.Features() {
		printFeatureDetails(f)
		count++
		if count >= 5 {
			break
		}
	}
}
