package main

import (
	"flag"
	"log"

	"github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/fonts"
	"github.com/automoto/propertyanimation/scenes"
	"github.com/automoto/propertyanimation/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Teardown()
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.UI.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		scene: scenes.NewStarFieldScene(nil),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Teardown()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	animPath := flag.String("anim", "", "YAML file overriding the animation parameters")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "sound effect volume (0.0 - 1.0)")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	config.Audio.Muted = *mute
	systems.SetSFXVolume(*volume)

	if *animPath != "" {
		a, err := config.LoadAnimationOverrides(*animPath, config.Animations)
		if err != nil {
			log.Printf("Warning: Could not load animation overrides: %v", err)
		} else {
			config.Animations = a
			log.Printf("[config] loaded animation overrides from %s", *animPath)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
