package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexfollow/scenario"
)

func main() {
	name := flag.String("scenario", "corridor", "scenario name")
	watch := flag.Bool("watch", false, "reload the scenario when it changes on disk")
	dir := flag.String("dir", scenario.Dir, "directory checked for scenarios before the embedded ones")
	flag.Parse()

	scenario.Dir = *dir

	v, err := NewViewer(*name)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := v.Watch(*dir); err != nil {
			log.Printf("watch %s: %v", *dir, err)
		}
	}
	defer v.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("followview - " + *name)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
