package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mhalsted/overgrove/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Overgrove")
	ebiten.SetWindowSize(1280, 960)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
