package game

import (
	"github.com/esklarski/SmallCreatureAI/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler handles all user input for the sandbox
type InputHandler struct {
	game    *SandboxGame
	toggles keytracker.Toggles
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *SandboxGame) *InputHandler {
	return &InputHandler{
		game:    game,
		toggles: keytracker.NewToggles(ebiten.KeyP, ebiten.KeyR, ebiten.KeyF1),
	}
}

// HandleInput processes all input for the current tick
func (ih *InputHandler) HandleInput() {
	ih.handleUIInput()
	if !ih.game.paused {
		ih.handleMovementInput()
	}
}

// handleMovementInput walks and turns the player
func (ih *InputHandler) handleMovementInput() {
	var forward, turn float64

	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		turn--
	}

	ih.game.world.Player().Move(forward, turn, ih.game.dt)
}

// handleUIInput processes the one-shot keys
func (ih *InputHandler) handleUIInput() {
	if ih.toggles.JustPressed(ebiten.KeyP) {
		ih.game.paused = !ih.game.paused
	}
	if ih.toggles.JustPressed(ebiten.KeyR) {
		_ = ih.game.ReloadCreatures()
	}
	if ih.toggles.JustPressed(ebiten.KeyF1) {
		ih.game.showHUD = !ih.game.showHUD
	}
}
