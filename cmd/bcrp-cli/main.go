package main

import (
	"bcrpharvest/cmd/bcrp-cli/commands"
)

func main() {
	commands.Execute()
}
