package main

import (
	"oss.terrastruct.com/ixtheme/ixcli"
	"oss.terrastruct.com/ixtheme/lib/xmain"
)

func main() {
	xmain.Main(ixcli.Run)
}
