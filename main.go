package main

import "github.com/BertoldVdb/atflash/cmd"

func main() {
	cmd.Execute()
}
