package model

//go:generate go run ../internal/cmd/generate -out gen
