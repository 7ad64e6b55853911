//go:build desktop

package main

import (
	"github.com/wricardo/maze-game/game/session"
	"github.com/wricardo/maze-game/render/desktop"
)

func runDesktop(sess *session.Session) error {
	return desktop.Run(sess)
}
