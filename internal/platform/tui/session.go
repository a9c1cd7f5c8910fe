package tui

import (
	petname "github.com/dustinkirkland/golang-petname"
)

// NewSessionName returns a readable session name such as "brave-otter".
func NewSessionName() string {
	return petname.Generate(2, "-")
}
