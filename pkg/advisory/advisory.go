// Package advisory renders tilt advisories for people (text) and for scripts (JSON).
package advisory

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/1F47E/sol/pkg/models"
	"github.com/charmbracelet/lipgloss"
)

// UnknownHemisphereAdvice is printed in place of the orientation line when
// the latitude carried no N/S direction.
const UnknownHemisphereAdvice = "Direction not given. In the Northern Hemisphere, point your solar panel true south. " +
	"In the Southern Hemisphere, point your solar panel true north."

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %q or %q)", s, FormatText, FormatJSON)
	}
}

// Printer writes advisories to an io.Writer
type Printer struct {
	w      io.Writer
	format Format
	styled bool
	label  lipgloss.Style
	hint   lipgloss.Style
}

// Option configures a Printer
type Option func(*Printer)

// WithFormat sets the output encoding. The default is FormatText.
func WithFormat(f Format) Option {
	return func(p *Printer) { p.format = f }
}

// WithStyle enables terminal styling of the text labels
func WithStyle(styled bool) Option {
	return func(p *Printer) { p.styled = styled }
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, format: FormatText}
	for _, opt := range opts {
		opt(p)
	}

	r := lipgloss.NewRenderer(w)
	p.label = r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFB86C"))
	p.hint = r.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))
	return p
}

type fixedJSON struct {
	Mode        string             `json:"mode"`
	Orientation models.Orientation `json:"orientation"`
	Tilt        float64            `json:"tilt"`
}

type seasonalJSON struct {
	Mode        string             `json:"mode"`
	Orientation models.Orientation `json:"orientation"`
	Summer      float64            `json:"summer_tilt"`
	Winter      float64            `json:"winter_tilt"`
}

// PrintFixed writes the orientation line, the inclination line and a blank line
func (p *Printer) PrintFixed(adv models.TiltAdvisory) error {
	if p.format == FormatJSON {
		return p.encode(fixedJSON{
			Mode:        "fixed",
			Orientation: adv.Orientation,
			Tilt:        round(adv.Tilt),
		})
	}

	if _, err := fmt.Fprintf(p.w, "%s\n%s %s°\n\n",
		p.orientationLine(adv.Orientation),
		p.renderLabel("Inclination:"), FormatDegrees(adv.Tilt)); err != nil {
		return fmt.Errorf("failed to write advisory: %w", err)
	}
	return nil
}

// PrintSeasonal writes the orientation line, summer and winter inclinations and a blank line
func (p *Printer) PrintSeasonal(adv models.SeasonalAdvisory) error {
	if p.format == FormatJSON {
		return p.encode(seasonalJSON{
			Mode:        "adjustable",
			Orientation: adv.Orientation,
			Summer:      round(adv.Summer),
			Winter:      round(adv.Winter),
		})
	}

	if _, err := fmt.Fprintf(p.w, "%s\n%s %s°\n%s %s°\n\n",
		p.orientationLine(adv.Orientation),
		p.renderLabel("Summer inclination:"), FormatDegrees(adv.Summer),
		p.renderLabel("Winter inclination:"), FormatDegrees(adv.Winter)); err != nil {
		return fmt.Errorf("failed to write advisory: %w", err)
	}
	return nil
}

func (p *Printer) orientationLine(o models.Orientation) string {
	switch o {
	case models.FaceSouth:
		return p.renderLabel("Orientation:") + " south"
	case models.FaceNorth:
		return p.renderLabel("Orientation:") + " north"
	default:
		if p.styled {
			return p.hint.Render(UnknownHemisphereAdvice)
		}
		return UnknownHemisphereAdvice
	}
}

func (p *Printer) renderLabel(s string) string {
	if !p.styled {
		return s
	}
	return p.label.Render(s)
}

func (p *Printer) encode(v any) error {
	if err := json.NewEncoder(p.w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode advisory: %w", err)
	}
	return nil
}

// FormatDegrees renders an angle rounded to two decimals without trailing zeros: 34.42, 8.7, 0.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(round(v), 'f', -1, 64)
}

func round(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
