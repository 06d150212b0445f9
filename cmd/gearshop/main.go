package main

import "github.com/matthieukhl/gearshop/internal/cmd"

func main() {
	cmd.Execute()
}
