// Command dojo runs and inspects the idle dojo simulation.
package main

import "github.com/talgya/dojo-idle/cmd/dojo/root"

func main() {
	root.Execute()
}
