package assets

import "github.com/vovakirdan/typecatch/internal/core"

// sprites are keyed by the catalog "art" field.
var sprites = map[string][]string{
	"blob": {
		`   ___   `,
		`  /o o\  `,
		` (  ▽  ) `,
		`  \___/  `,
	},
	"beast": {
		` /\___/\ `,
		`( o   o )`,
		` \  ω  / `,
		`  |_|_|  `,
	},
	"bird": {
		`   __    `,
		` <(o )__ `,
		`  ( ._> /`,
		`   \___/ `,
	},
	"bug": {
		` \  _  / `,
		`  (o o)  `,
		` -( : )- `,
		`  /   \  `,
	},
	"fish": {
		`    __   `,
		` ><(o ))>`,
		`    ‾‾   `,
		`  ~ ~ ~  `,
	},
	"plant": {
		`  \|/|/  `,
		`  (o o)  `,
		`   \_/   `,
		`  _|_|_  `,
	},
	"dragon": {
		` /\  __  `,
		`<(o)/  \>`,
		`  \_ vv/ `,
		`  /_/\_\ `,
	},
	"ghost": {
		`  .---.  `,
		` ( o o ) `,
		` |  O  | `,
		` '^^^^^' `,
	},
}

// scenes are keyed by the tier background field.
var scenes = map[string]Backdrop{
	"meadow":  {Pattern: ',', Color: core.ColorGreen, Density: 11},
	"river":   {Pattern: '~', Color: core.ColorBlue, Density: 7},
	"ridge":   {Pattern: '^', Color: core.ColorRed, Density: 13},
	"citadel": {Pattern: '·', Color: core.ColorCyan, Density: 9},
	"default": {Pattern: '.', Color: core.ColorDimGray, Density: 17},
}
