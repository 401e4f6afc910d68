package main

import (
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"

	shapefile "github.com/beetlebugorg/shapefile/pkg/v1"
)

func main() {
	loaded, err := shapefile.LoadLayer("buildings.shp", shapefile.NewDecoder())
	if err != nil {
		log.Fatal(err)
	}

	// Every geometry-bearing record becomes a GeoJSON feature
	fc := loaded.Layer.FeatureCollection()
	fmt.Printf("Exporting %d features\n", len(fc.Features))

	out, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("buildings.geojson", out, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d bytes to buildings.geojson\n", len(out))

	// Single geometries marshal too
	for _, rec := range loaded.Layer.Records()[:3] {
		geom := rec.Geometry()
		if geom == nil {
			continue
		}
		line, _ := json.Marshal(geom)
		fmt.Printf("record %d: %s\n", rec.Number(), line)
	}
}
