package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHomeState(t *testing.T) {
	s := NewHomeState()
	assert.False(t, s.SidebarOpen)
	assert.Equal(t, NoFAQ, s.ActiveFAQ)
	assert.False(t, s.ScrollTopVisible)
	assert.True(t, s.PreloaderVisible)
}

func TestHomeState_Sidebar(t *testing.T) {
	s := NewHomeState()
	s.OpenSidebar()
	assert.True(t, s.SidebarOpen)
	s.FollowAnchor()
	assert.False(t, s.SidebarOpen)
	s.OpenSidebar()
	s.CloseSidebar()
	assert.False(t, s.SidebarOpen)
}

func TestHomeState_ToggleFAQ(t *testing.T) {
	s := NewHomeState()

	s.ToggleFAQ(2)
	assert.Equal(t, 2, s.ActiveFAQ)
	assert.True(t, s.IsFAQOpen(2))

	s.ToggleFAQ(0)
	assert.Equal(t, 0, s.ActiveFAQ)
	assert.False(t, s.IsFAQOpen(2))

	s.ToggleFAQ(0)
	assert.Equal(t, NoFAQ, s.ActiveFAQ)
}

func TestHomeState_OnScroll(t *testing.T) {
	testCases := []struct {
		y        float64
		expected bool
	}{
		{y: 0, expected: false},
		{y: 300, expected: false},
		{y: 300.5, expected: true},
		{y: 1200, expected: true},
	}

	s := NewHomeState()
	for _, tc := range testCases {
		s.OnScroll(tc.y)
		assert.Equal(t, tc.expected, s.ScrollTopVisible, "y=%v", tc.y)
	}
}

func TestHomeState_HidePreloader(t *testing.T) {
	s := NewHomeState()
	s.HidePreloader()
	assert.False(t, s.PreloaderVisible)
}
