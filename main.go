package main

import (
	"github.com/mj1618/cute-borders/cmd"
	_ "github.com/mj1618/cute-borders/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
