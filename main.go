package main

import (
	"log"

	"github.com/sjzar/pausemenu/cmd/pausemenu"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	pausemenu.Execute()
}
