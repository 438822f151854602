package ui

import (
	"strings"

	figure "github.com/common-nighthawk/go-figure"
)

// Banner renders title as ASCII art for the interactive menu.
func Banner(title string) string {
	art := strings.TrimRight(figure.NewFigure(title, "", true).String(), "\n")
	if noColor() {
		return art + "\n"
	}
	return Success.Sprint(art) + "\n"
}
