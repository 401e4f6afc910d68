package main

import (
	"fmt"
	"log"

	shapefile "github.com/beetlebugorg/shapefile/pkg/v1"
)

func main() {
	// Load and decode a shapefile
	loaded, err := shapefile.LoadLayer("coastline.shp", shapefile.NewDecoder())
	if err != nil {
		log.Fatal(err)
	}
	layer := loaded.Layer

	// Print layer info
	fmt.Printf("Layer: %s\n", loaded.Name())
	fmt.Printf("Shape type: %v\n", layer.ShapeType())
	fmt.Printf("Records: %d\n", layer.RecordCount())

	// Get layer bounds
	bounds := layer.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)
}
