// Package ui holds the page-local view state of the Bookit pages. None of it
// is persisted; a fresh state is built for every render.
package ui

import "time"

const (
	// ScrollTopThreshold is the scroll offset in pixels past which the
	// scroll-to-top button is shown.
	ScrollTopThreshold = 300

	// HomePreloaderDelay is how long the home page preloader stays before fading.
	HomePreloaderDelay = 1500 * time.Millisecond
	// PreloaderFade is the fade-out duration after which the preloader is removed.
	PreloaderFade = 500 * time.Millisecond
	// AdminPreloaderDelay is how long the admin pages keep their preloader.
	AdminPreloaderDelay = 3 * time.Second

	// NoFAQ marks that no FAQ item is expanded.
	NoFAQ = -1
)

// HomeState is the view state of the marketing page.
type HomeState struct {
	SidebarOpen      bool
	ActiveFAQ        int
	ScrollTopVisible bool
	PreloaderVisible bool
}

// NewHomeState returns the state of a freshly mounted page.
func NewHomeState() HomeState {
	return HomeState{ActiveFAQ: NoFAQ, PreloaderVisible: true}
}

func (s *HomeState) OpenSidebar()  { s.SidebarOpen = true }
func (s *HomeState) CloseSidebar() { s.SidebarOpen = false }

// FollowAnchor is an in-page navigation; it always closes the sidebar.
func (s *HomeState) FollowAnchor() {
	s.CloseSidebar()
}

// ToggleFAQ expands item i, or collapses it when it is already expanded.
func (s *HomeState) ToggleFAQ(i int) {
	if s.ActiveFAQ == i {
		s.ActiveFAQ = NoFAQ
		return
	}
	s.ActiveFAQ = i
}

// IsFAQOpen reports whether item i is expanded.
func (s HomeState) IsFAQOpen(i int) bool {
	return s.ActiveFAQ == i
}

// OnScroll updates the scroll-to-top button for a vertical offset y.
func (s *HomeState) OnScroll(y float64) {
	s.ScrollTopVisible = y > ScrollTopThreshold
}

// HidePreloader is fired by the preloader timer.
func (s *HomeState) HidePreloader() {
	s.PreloaderVisible = false
}
