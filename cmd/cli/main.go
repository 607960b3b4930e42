package main

import (
	"fmt"
	"os"

	"github.com/rkondo/realrent/cmd/cli/root"

	_ "github.com/rkondo/realrent/cmd/cli/properties"
	_ "github.com/rkondo/realrent/cmd/cli/salary"
	_ "github.com/rkondo/realrent/cmd/cli/users"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
