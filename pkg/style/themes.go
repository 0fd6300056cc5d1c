package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching.
// The palette follows the Cortex brand: cyan primary with conventional status colors.
var (
	// Brand colors
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#0E7490", // Cyan
		Dark:  "#22D3EE",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#155E75", // Dark cyan
		Dark:  "#0E7490",
	}

	// Status colors
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan-blue
		Dark:  "#4DD0E1",
	}

	// Text colors
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	TextColor = lipgloss.AdaptiveColor{
		Light: "#495057", // Dark gray
		Dark:  "#E9ECEF", // Light gray
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	// Background colors
	SurfaceColor = lipgloss.AdaptiveColor{
		Light: "#F8F9FA", // Very light gray
		Dark:  "#24253A",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6", // Light gray
		Dark:  "#3B3C4F",
	}
)

// Package action colors for the install plan table
var (
	InstallColor = lipgloss.AdaptiveColor{
		Light: "#10B981", // Emerald
		Dark:  "#34D399",
	}

	RemoveColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	UpgradeColor = lipgloss.AdaptiveColor{
		Light: "#F59E0B", // Orange
		Dark:  "#FBBF24",
	}
)
