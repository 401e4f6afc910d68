package main

import (
	"fmt"
	"log"
	"os"

	shapefile "github.com/beetlebugorg/shapefile/pkg/v1"
)

// Scan a directory without decoding any records: one header read per file
func scanMetadata(root string) []*shapefile.LayerMetadata {
	metas, errs := shapefile.ExtractMetadataFromDir(root)
	fmt.Printf("Found %d layers, %d errors\n", len(metas), len(errs))
	for _, meta := range metas {
		fmt.Printf("  %-20s %-12v %d records\n", meta.Name, meta.ShapeType, meta.RecordCount)
	}
	return metas
}

// Decode every layer with a worker pool
func loadAll(paths []string) *shapefile.LayerSet {
	set, errs := shapefile.LoadLayersParallel(paths, shapefile.NewDecoder(), shapefile.LoadOptions{
		Parallel:   true,
		Workers:    8,
		SkipErrors: true,
		Progress: func(loaded, total int) {
			fmt.Printf("\rLoading: %d/%d", loaded, total)
		},
		ErrorLog: os.Stderr,
	})
	fmt.Println()
	if len(errs) > 0 {
		fmt.Printf("Skipped %d layers due to errors\n", len(errs))
	}
	return set
}

func main() {
	fmt.Println("=== Metadata scan ===")
	metas := scanMetadata("./data")

	fmt.Println("\n=== Parallel load ===")
	paths := make([]string, len(metas))
	for i, meta := range metas {
		paths[i] = meta.Path
	}
	set := loadAll(paths)
	fmt.Printf("Loaded %d layers\n", len(set.Layers))

	fmt.Println("\n=== Cached loading ===")
	loader, err := shapefile.NewLayerLoader("./data", shapefile.LoaderOptions{
		CacheSize:     1024 * 1024 * 1024, // 1GB in-memory cache
		DecodeOptions: shapefile.DefaultDecodeOptions(),
	})
	if err != nil {
		log.Fatal(err)
	}

	viewport := shapefile.Bounds{MinX: -71.2, MaxX: -70.8, MinY: 42.2, MaxY: 42.5}
	for i := 0; i < 3; i++ {
		if _, err := loader.LayersInBounds(viewport, shapefile.QueryOptions{}); err != nil {
			log.Fatal(err)
		}
	}

	stats := loader.Stats()
	fmt.Printf("Cache: %d layers, %d/%d bytes\n", stats.CachedLayers, stats.CacheMemory, stats.MaxMemory)
	fmt.Printf("Hit rate: %.0f%%\n", loader.CacheHitRate()*100)
}
