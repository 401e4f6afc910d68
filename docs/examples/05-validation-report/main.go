package main

import (
	"fmt"
	"log"
	"os"

	shapefile "github.com/beetlebugorg/shapefile/pkg/v1"
)

func main() {
	path := "suspect.shp"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	// Validate reports every finding instead of stopping at the first
	issues := shapefile.Validate(data)
	if len(issues) == 0 {
		fmt.Printf("%s: clean\n", path)
		return
	}

	fmt.Printf("%s: %d issues\n", path, len(issues))
	byType := make(map[string]int)
	for _, iss := range issues {
		byType[iss.Type]++
		fmt.Printf("  [%s] %s\n", iss.Type, iss.Message)
	}

	fmt.Println("\nIssue summary:")
	for issueType, count := range byType {
		fmt.Printf("  %-16s %d\n", issueType, count)
	}

	// Header issues mean nothing past the header can be trusted
	for _, iss := range issues {
		switch iss.Type {
		case shapefile.IssueHeaderSize, shapefile.IssueFileCode,
			shapefile.IssueFileLength, shapefile.IssueVersion:
			fmt.Println("\nstructural damage: the file is not recoverable")
			return
		}
	}
	fmt.Println("\nrecord-level damage only: a tolerant decode can keep the rest")
}
