package ixthemescatalog

import "oss.terrastruct.com/ixtheme/ixthemes"

var siemensIXDark = ixthemes.Palette{
	Name:    "Siemens iX Dark",
	Mode:    ixthemes.Dark,
	Version: Version,

	Primary: ixthemes.Primary{
		Accent: ixthemes.Accent{
			Main:     "#00cccc",
			Hover:    "#00ffb9",
			Active:   "#00e5aa",
			Contrast: "#000028",
		},
		Disabled: "#00cccc73",
	},
	// Interactive elements
	Dynamic: ixthemes.Accent{
		Main:     "#00ffb9",
		Hover:    "#62eec7",
		Active:   "#5ce0bc",
		Contrast: "#000028",
	},
	Secondary: ixthemes.Accent{
		Main:     "#000028",
		Hover:    "#001f39",
		Active:   "#00182b",
		Contrast: "#ffffff",
	},
	Text: ixthemes.Text{
		Primary:   "#ffffff",
		Secondary: "#ffffff99",
		Disabled:  "rgba(255,255,255,0.45)",
		Hint:      "#ffffff99",
	},
	Background: ixthemes.Background{
		Default: "#000028",
		Paper:   "#23233c",
		Surface: "#37374d",
	},

	Error: ixthemes.Accent{
		Main:     "#ff2640",
		Hover:    "#ff4259",
		Active:   "#ff1431",
		Contrast: "#000028",
	},
	Warning: ixthemes.Accent{
		Main:     "#ffd732",
		Hover:    "#ffdd52",
		Active:   "#ffd424",
		Contrast: "#000028",
	},
	Info: ixthemes.Accent{
		Main:     "#00bedc",
		Hover:    "#00cff0",
		Active:   "#00b5d1",
		Contrast: "#000028",
	},
	Success: ixthemes.Accent{
		Main:     "#01d65a",
		Hover:    "#01ea62",
		Active:   "#01c151",
		Contrast: "#000028",
	},

	Ghost: ixthemes.Ghost{
		Main:           "#ffffff00",
		Hover:          "#9d9d9626",
		Active:         "#69696326",
		Selected:       "#00ffb91f",
		SelectedHover:  "#68fdbf38",
		SelectedActive: "#73ddaf38",
	},
	Component: ixthemes.Component{
		L1: "#9d9d9633",
		L2: "#ffffff26",
		L3: "#ffffff4d",
		L4: "#ffffff73",
		L5: "#ffffff99",
		L6: "#ffffffbf",
	},
	Border: ixthemes.Border{
		Std:      "#e8e8e38c",
		Soft:     "#ebf0f566",
		Weak:     "#e8e8e326",
		XWeak:    "#9d9d9633",
		Focus:    "#1491EB",
		Contrast: "#ffffff",
		Hard:     "#b3b3be",
	},
	Neutral: ixthemes.Accent{
		Main:     "#b9b9b6",
		Hover:    "#cbcbc8",
		Active:   "#afafac",
		Contrast: "#000028",
	},
	Shadow: ixthemes.Shadow{
		L1: "#00000099",
		L2: "#000000",
		L3: "#00000099",
	},
}
