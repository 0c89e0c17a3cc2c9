package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/dodeca-viz/internal/config"
	"github.com/iburimskiy/dodeca-viz/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Dodecahedron Wireframe - Space: Pause, Esc/Q: Quit")

	fmt.Println("Starting dodecahedron wireframe")

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title("Dodecahedron Wireframe"))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
