//go:build !desktop

package main

import (
	"errors"

	"github.com/wricardo/maze-game/game/session"
)

// errNoDesktop is returned when the binary was built without the ebiten
// frontend
var errNoDesktop = errors.New("desktop frontend not available: rebuild with -tags desktop")

func runDesktop(sess *session.Session) error {
	return errNoDesktop
}
