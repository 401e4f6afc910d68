package main

import (
	"fmt"
	"log"

	shapefile "github.com/beetlebugorg/shapefile/pkg/v1"
)

func main() {
	// Index a directory of shapefiles without decoding them
	loader, err := shapefile.NewLayerLoader("./data", shapefile.DefaultLoaderOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Indexed %d layers\n", loader.Index().Count())

	// Boston Harbor viewport
	viewport := shapefile.Bounds{
		MinX: -71.05, MaxX: -70.85,
		MinY: 42.25, MaxY: 42.40,
	}

	// Decode only the layers covering the viewport
	layers, err := loader.LayersInBounds(viewport, shapefile.QueryOptions{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Layers in viewport: %d\n", len(layers))

	// Within each layer, query the records that could be visible
	for _, layer := range layers {
		visible := layer.RecordsInBounds(viewport)
		fmt.Printf("  %v layer: %d of %d records visible\n",
			layer.ShapeType(), len(visible), layer.RecordCount())
	}
}
