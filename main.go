/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command figtok compiles Tokens Studio design tokens to CSS and JSON.
package main

import (
	"os"

	"bennypowers.dev/figtok/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
