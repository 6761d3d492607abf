package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/scene"
	"github.com/litescript/ls-cosmos/internal/state"
)

// hudLines is the height reserved below the canvas.
const hudLines = 3

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
)

func field(key, value string) string {
	return keyStyle.Render(key+":") + " " + valueStyle.Render(value)
}

func join(parts ...string) string {
	return strings.Join(parts, "  ")
}

// renderHUD renders the information block for the current scene.
func renderHUD(snap state.Snapshot, labels LabelMode, playing bool) string {
	lines := make([]string, 0, hudLines)

	switch s := snap.Scene.(type) {
	case *scene.SolarSystemScene:
		play := "paused"
		if playing {
			play = "playing"
		}
		lines = append(lines,
			join(
				headerStyle.Render(string(glyphSun)+" Sonnensystem"),
				field("Zoom", fmt.Sprintf("%.1f", s.Status.ZoomLevel)),
				field("Modus", s.Status.Mode),
				field("Zeit", s.Status.Timestamp),
				dimStyle.Render(play),
				valueStyle.Render(s.Status.SunRadiusInfo),
				field("Faktor", fmt.Sprintf("%.3g", s.Status.ZoomFactor)),
			),
			solarSelection(s),
		)
	case *scene.LocalStarsScene:
		lines = append(lines,
			join(
				headerStyle.Render(string(glyphStar)+" Sternnachbarschaft"),
				field("Zoom", fmt.Sprintf("%.1f", snap.Request.ZoomLevel)),
				field("Radius", fmt.Sprintf("%.0f ly", s.ZoomInfo.MaxDistanceLY)),
				field("Sterne", fmt.Sprintf("%d", s.ZoomInfo.StarCount)),
				field("Relativ", fmt.Sprintf("%.1f", s.ZoomInfo.RelativeLevel)),
				armNames(s.SpiralArms),
			),
			starSelection(s),
		)
	case *scene.LocalGroupScene:
		lines = append(lines,
			join(
				headerStyle.Render(string(glyphMilkyWay)+" Lokale Gruppe"),
				field("Zoom", fmt.Sprintf("%.1f", snap.Request.ZoomLevel)),
				field("Galaxien", fmt.Sprintf("%d", len(s.Galaxies))),
			),
			galaxySelection(s),
		)
	default:
		lines = append(lines, dimStyle.Render("Waiting for first scene..."), "")
	}

	lines = append(lines, statusLine(snap, labels))
	return strings.Join(lines, "\n")
}

func solarSelection(s *scene.SolarSystemScene) string {
	if s.Status.Selected == nil {
		return dimStyle.Render("(nothing selected, tab to cycle)")
	}
	name := *s.Status.Selected
	parts := []string{headerStyle.Render(string(glyphPlanetSel) + " " + name)}
	if info := s.SelectedInfo; info != nil {
		parts = append(parts,
			field("Ø", fmt.Sprintf("%.0f km", info.DiameterKm)),
		)
		if name == catalog.SunName {
			parts = append(parts, field("Planeten", fmt.Sprintf("%d", info.Planets)))
		} else {
			parts = append(parts,
				field("Abstand", fmt.Sprintf("%.3f AE", info.DistanceAU)),
				field("Monde", fmt.Sprintf("%d", info.Moons)),
			)
		}
		if info.Temperature != "" {
			parts = append(parts, field("Temp", info.Temperature))
		}
		if info.Rotation != "" {
			parts = append(parts, field("Rotation", info.Rotation))
		}
	}
	return join(parts...)
}

func starSelection(s *scene.LocalStarsScene) string {
	for _, st := range s.Stars {
		if !st.Selected {
			continue
		}
		planets := "nein"
		if st.HasPlanets {
			planets = "ja"
		}
		return join(
			headerStyle.Render(string(glyphStarSel)+" "+st.Name),
			field("Entfernung", fmt.Sprintf("%.2f ly", st.DistanceLY)),
			field("Masse", fmt.Sprintf("%.2f M☉", st.MassSolar)),
			field("Klasse", st.SpectralClass),
			field("Planeten", planets),
		)
	}
	if s.Sun.Selected {
		return headerStyle.Render(string(glyphSun) + " " + s.Sun.Name)
	}
	return dimStyle.Render("(nothing selected, tab to cycle)")
}

func galaxySelection(s *scene.LocalGroupScene) string {
	for _, g := range s.Galaxies {
		if !g.Selected {
			continue
		}
		return join(
			headerStyle.Render(string(glyphGalaxySel)+" "+g.Name),
			field("Entfernung", fmt.Sprintf("%.2g ly", g.DistanceLY)),
			field("Durchmesser", fmt.Sprintf("%.0f ly", g.DiameterLY)),
			field("Sterne", fmt.Sprintf("%.2g", float64(g.Stars))),
		)
	}
	if s.MilkyWay.Selected {
		return headerStyle.Render(string(glyphMilkyWay) + " " + s.MilkyWay.Name)
	}
	return dimStyle.Render("(nothing selected, tab to cycle)")
}

func armNames(arms []catalog.SpiralArm) string {
	if len(arms) == 0 {
		return ""
	}
	names := make([]string, len(arms))
	for i, a := range arms {
		names[i] = a.Name
	}
	return field("Arme", strings.Join(names, ", "))
}

// statusLine shows the last error or event and the compute times.
func statusLine(snap state.Snapshot, labels LabelMode) string {
	var parts []string
	if snap.LastError != nil {
		parts = append(parts, errorStyle.Render("ERROR: "+snap.LastError.Error()))
	} else if n := len(snap.Events); n > 0 {
		parts = append(parts, eventStyle.Render(describeEvent(snap.Events[n-1])))
	}
	if snap.ComputeDuration > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("computed in %s (avg %s)",
			snap.ComputeDuration.Round(10*time.Microsecond), snap.AverageDuration.Round(10*time.Microsecond))))
	}
	parts = append(parts, field("Labels", labels.String()))
	return join(parts...)
}

func describeEvent(e state.Event) string {
	switch e.Type {
	case state.EventRegimeChange:
		return fmt.Sprintf("%s → %s", e.From, e.To)
	case state.EventBodyAppeared:
		return "+ " + e.Body
	case state.EventBodyVanished:
		return "- " + e.Body
	case state.EventSelection:
		return "selected " + e.Body
	case state.EventComputeError:
		return "error: " + e.Detail
	default:
		return string(e.Type)
	}
}
