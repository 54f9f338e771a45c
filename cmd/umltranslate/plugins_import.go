package main

// Blank imports ensure every dialect strategy's init() registration runs
// for this binary — the registry is empty until each package is linked in.
import (
	_ "github.com/umltranslator/translator-go/internal/strategy/eaxmi"
	_ "github.com/umltranslator/translator-go/internal/strategy/papyrus"
	_ "github.com/umltranslator/translator-go/internal/strategy/staruml"
)
