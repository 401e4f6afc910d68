package main

import (
	"fmt"
	"log"
	"os"

	shapefile "github.com/beetlebugorg/shapefile/pkg/v1"
)

// Decode only polygon records for faster area rendering
func decodePolygonsOnly(data []byte) (*shapefile.Layer, error) {
	opts := shapefile.DefaultDecodeOptions()
	opts.ShapeTypeFilter = []shapefile.ShapeType{
		shapefile.ShapeTypePolygon,
		shapefile.ShapeTypePolygonZ,
		shapefile.ShapeTypePolygonM,
	}

	return shapefile.NewDecoder().DecodeWithOptions(data, opts)
}

// Tolerant mode keeps decoding past broken records
func decodeTolerant(data []byte) (*shapefile.Layer, error) {
	opts := shapefile.DefaultDecodeOptions()
	opts.SkipInvalidRecords = true

	return shapefile.NewDecoder().DecodeWithOptions(data, opts)
}

func main() {
	data, err := os.ReadFile("landuse.shp")
	if err != nil {
		log.Fatal(err)
	}

	// Decode polygons only
	fmt.Println("=== Polygon records only ===")
	layer, err := decodePolygonsOnly(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Records decoded: %d\n", layer.RecordCount())

	// Decode everything, skipping what is broken
	fmt.Println("\n=== Tolerant decode ===")
	layer, err = decodeTolerant(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Records decoded: %d\n", layer.RecordCount())
	for _, iss := range layer.Issues() {
		fmt.Printf("  skipped: %s\n", iss.Message)
	}
}
