package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bacgo/bacapp"
)

// decode reads a hex-encoded application-tag stream from argv[1] and
// prints the decoded tag list, one line per tag.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s <hex-encoded tag stream>", os.Args[0])
	}

	data, err := bacnet.ParseHex(os.Args[1])
	if err != nil {
		log.Fatalf("invalid hex: %v", err)
	}

	tags, err := bacnet.DecodeTagList(data)
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	for i, tag := range tags.Tags() {
		fmt.Printf("%2d: %-10s %s\n", i, tag.Class, tag)
	}
}
