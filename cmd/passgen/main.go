package main

import (
	"fmt"
	"os"
)

func main() {
	app := newAppContext()
	defer app.Close()

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		app.Close()
		os.Exit(1)
	}
}
