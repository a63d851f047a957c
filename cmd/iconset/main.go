package main

import (
	"os"

	"github.com/viant/iconset-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
