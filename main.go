package main

import (
	"github.com/joho/godotenv"
	"github.com/rnwolfe/zenith/cmd"
)

func main() {
	// A .env in the working directory may carry GEMINI_API_KEY.
	_ = godotenv.Load()
	cmd.Execute()
}
