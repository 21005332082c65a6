// BoxFit packs cuboid items into the fewest identical bins it can find.
//
// Build:
//   go build -o boxfit ./cmd/boxfit
//
// Example:
//   boxfit pack --bin 8x8x12 --item deck=2x8x12*4 --item die=8x8x8

package main

import "github.com/piwi3910/BoxFit/cmd/boxfit/commands"

func main() {
	commands.Execute()
}
