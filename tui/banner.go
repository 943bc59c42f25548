package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Banner writes the lvlviz ASCII banner to out, with a cyan-to-green
// gradient on color-capable profiles and plain text everywhere else.
func Banner(out *termenv.Output) {
	rows := []string{
		` _       _       _     `,
		`| |_   _| |_   _(_)____`,
		`| \ \ / / \ \ / / |_  /`,
		`| |\ V /| |\ V /| |/ / `,
		`|_| \_/ |_| \_/ |_/___|`,
	}
	shades := []string{"#22d3ee", "#2dd4bf", "#34d399", "#4ade80", "#a3e635"}

	color := false
	switch out.Profile {
	case termenv.TrueColor, termenv.ANSI256, termenv.ANSI:
		color = true
	}

	fmt.Fprintln(out)
	for i, row := range rows {
		if color {
			fmt.Fprintln(out, out.String(row).Foreground(out.Profile.Color(shades[i])))
		} else {
			fmt.Fprintln(out, row)
		}
	}
	fmt.Fprintln(out, "        stepwise algorithm visualization")
	fmt.Fprintln(out)
}
