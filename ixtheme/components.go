package ixtheme

import "oss.terrastruct.com/ixtheme/ixthemes"

const (
	Button    = "MuiButton"
	Chip      = "MuiChip"
	TextField = "MuiTextField"
)

func buildComponents(p ixthemes.Palette) Components {
	return Components{
		Button: {
			StyleOverrides: map[string]Style{
				// iX uses sentence case
				"root": {
					"textTransform": "none",
					"borderRadius":  ButtonRadius,
				},
				"containedPrimary": {
					"&:hover": Style{
						"backgroundColor": p.Primary.Hover,
					},
					"&:active": Style{
						"backgroundColor": p.Primary.Active,
					},
				},
				"containedSecondary": {
					"backgroundColor": p.Dynamic.Main,
					"color":           p.Dynamic.Contrast,
					"&:hover": Style{
						"backgroundColor": p.Dynamic.Hover,
					},
					"&:active": Style{
						"backgroundColor": p.Dynamic.Active,
					},
				},
			},
		},
		Chip: {
			StyleOverrides: map[string]Style{
				"root": {
					"borderRadius": ChipRadius,
				},
				"colorPrimary": {
					"backgroundColor": p.Primary.Main,
					"color":           p.Primary.Contrast,
					"&:hover": Style{
						"backgroundColor": p.Primary.Hover,
					},
				},
			},
		},
		TextField: {
			StyleOverrides: map[string]Style{
				"root": {
					"& .MuiOutlinedInput-root": Style{
						"&:hover .MuiOutlinedInput-notchedOutline": Style{
							"borderColor": p.Dynamic.Main,
						},
						"&.Mui-focused .MuiOutlinedInput-notchedOutline": Style{
							"borderColor": p.Dynamic.Main,
						},
					},
				},
			},
		},
	}
}
