// Command quantify inspects the standard unit catalog.
//
//	quantify catalog --group length
//	quantify table --group temperature --value 100
//	quantify verify
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
