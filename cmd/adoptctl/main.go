// Command adoptctl is a terminal front end for the pet adoption API.
package main

import (
	"os"
)

func main() {
	a := &app{out: os.Stdout}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
