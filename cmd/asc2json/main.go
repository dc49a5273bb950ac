package main

import (
	"os"

	"github.com/gruppe-adler/asc2json/internal/convert"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

func main() {
	os.Exit(convert.Execute(version, os.Args[1:], os.Stdout, os.Stderr))
}
