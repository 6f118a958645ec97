package main

import (
	"github.com/Manu343726/mezcla/cmd"
)

func main() {
	cmd.Execute()
}
