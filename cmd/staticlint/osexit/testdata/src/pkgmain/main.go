package main

import "os"

func main() {
	defer func() {
		os.Exit(2)
	}()

	if len(os.Args) > 3 {
		os.Exit(1) // want "direct os.Exit call in main function"
	}
	exit(0)
}

func exit(code int) {
	os.Exit(code)
}
