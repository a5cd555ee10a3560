package main

import (
	"github.com/hance08/bills/cmd"
	"github.com/hance08/bills/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
