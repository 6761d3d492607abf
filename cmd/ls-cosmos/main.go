// Command ls-cosmos computes and displays multi-scale astronomical scenes:
// the solar system, the stellar neighbourhood and the Local Group.
package main

import "github.com/litescript/ls-cosmos/internal/cli"

func main() {
	cli.Execute()
}
