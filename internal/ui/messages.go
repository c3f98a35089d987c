package ui

import (
	"selectdrop/internal/domain"
)

// CatalogUpdatedMsg carries a catalog reloaded from disk
type CatalogUpdatedMsg struct {
	Options []domain.Option
	Source  string
}

// CatalogErrorMsg reports a failed catalog reload
type CatalogErrorMsg struct {
	Err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
