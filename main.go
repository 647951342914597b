package main

import "github.com/Tiliavir/exercise-for-good/cmd"

func main() {
	cmd.Execute()
}
