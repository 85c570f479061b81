package ixthemescatalog

import "oss.terrastruct.com/ixtheme/ixthemes"

var siemensIXLight = ixthemes.Palette{
	Name:    "Siemens iX Light",
	Mode:    ixthemes.Light,
	Version: Version,

	Primary: ixthemes.Primary{
		Accent: ixthemes.Accent{
			Main:     "#007993",
			Hover:    "#196269",
			Active:   "#16565c",
			Contrast: "#ffffff",
		},
		Disabled: "#0079934d",
	},
	// Interactive elements
	Dynamic: ixthemes.Accent{
		Main:     "#005159",
		Hover:    "#125d65",
		Active:   "#105259",
		Contrast: "#ffffff",
	},
	Secondary: ixthemes.Accent{
		Main:     "#ffffff",
		Hover:    "#d1fff2",
		Active:   "#b8f2e2",
		Contrast: "#000028",
	},
	Text: ixthemes.Text{
		Primary:   "#000028",
		Secondary: "#00002899",
		Disabled:  "#0000284d",
		Hint:      "#00002899",
	},
	Background: ixthemes.Background{
		Default: "#ffffff",
		Paper:   "#f3f3f0",
		Surface: "#e8e8e3",
	},

	Error: ixthemes.Accent{
		Main:     "#d72339",
		Hover:    "#c11f33",
		Active:   "#b41d30",
		Contrast: "#ffffff",
	},
	Warning: ixthemes.Accent{
		Main:     "#e9c32a",
		Hover:    "#e3ba17",
		Active:   "#d0ab15",
		Contrast: "#000028",
	},
	Info: ixthemes.Accent{
		Main:     "#007eb1",
		Hover:    "#00719e",
		Active:   "#006994",
		Contrast: "#ffffff",
	},
	Success: ixthemes.Accent{
		Main:     "#01893a",
		Hover:    "#017a33",
		Active:   "#016f2f",
		Contrast: "#ffffff",
	},

	Ghost: ixthemes.Ghost{
		Main:           "#00002800",
		Hover:          "#bdbdae26",
		Active:         "#8f8f7526",
		Selected:       "#00ffb92e",
		SelectedHover:  "#20c57e38",
		SelectedActive: "#009e6738",
	},
	Component: ixthemes.Component{
		L1: "#bdbdae33",
		L2: "#0000281a",
		L3: "#00002833",
		L4: "#0000284d",
		L5: "#00002873",
		L6: "#00002899",
	},
	Border: ixthemes.Border{
		Std:      "#0000284d",
		Soft:     "#00002833",
		Weak:     "#23233c26",
		XWeak:    "#bdbdae33",
		Focus:    "#1491EB",
		Contrast: "#000028",
		Hard:     "#4c4c68",
	},
	Neutral: ixthemes.Accent{
		Main:     "#66667e",
		Hover:    "#5b5b71",
		Active:   "#545468",
		Contrast: "#ffffff",
	},
	Shadow: ixthemes.Shadow{
		L1: "#0000281a",
		L2: "#00002833",
		L3: "#0000281e",
	},
}
